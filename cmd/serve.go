package cmd

import (
	"fmt"

	"product-console/internal/handler"
	"product-console/pkg/logger"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web console",
	Long: `Start an HTTP server that renders the product page: the list of records,
the add form and the status banner.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting web console", appConfig.LogFields()...)

	renderer, err := handler.NewTemplateRenderer()
	if err != nil {
		return err
	}

	client := newAPIClient(log)

	e := newEcho()
	e.Renderer = renderer
	handler.NewConsoleHandler(client).RegisterRoutes(e)
	e.GET("/health", handler.NewHealthHandler(client).HealthCheck)

	if err := runServer(cmd.Context(), e, appConfig.Server.Port); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

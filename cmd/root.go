package cmd

import (
	"context"
	"fmt"
	"os"

	"product-console/internal/api"
	"product-console/pkg/config"
	"product-console/pkg/jwtutil"
	"product-console/pkg/logger"
	"product-console/prometheus"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "product-console"

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "product-console",
	Short: "List and add product records against a product API",
	Long: `product-console lists product records from a records endpoint and submits
new ones to an uploads endpoint. It runs as a web console, a terminal console
or one-shot commands, and ships a local catalog API for development.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(catalogCmd)
}

func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig = cfg

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	prometheus.InitMetrics(cfg.Metrics.Prefix)
	return nil
}

// newAPIClient builds the product API client, signing requests when a JWT
// signing key is configured
func newAPIClient(log *zap.Logger) *api.Client {
	client := api.NewClient(appConfig.API.RecordsURL, appConfig.API.UploadsURL, appConfig.API.Timeout, log)

	if appConfig.JWT.Enabled() {
		util := jwtutil.NewJWTUtil(newJWTConfig())
		client.Token = func() (string, error) {
			return util.GenerateToken(appConfig.ServiceName)
		}
	}
	return client
}

func newJWTConfig() *jwtutil.Config {
	return &jwtutil.Config{
		SigningKey:        appConfig.JWT.SigningKey,
		ExpirationMinutes: appConfig.JWT.ExpirationMinutes,
		Issuer:            appConfig.JWT.Issuer,
	}
}

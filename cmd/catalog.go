package cmd

import (
	"fmt"
	"net/http"

	"product-console/internal/catalog"
	mid "product-console/internal/middleware"
	"product-console/pkg/database"
	"product-console/pkg/jwtutil"
	"product-console/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogMemory bool

var catalogCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Serve a local records/uploads API",
	Long: `Serve GET /records and POST /uploads backed by PostgreSQL (DB_* settings)
or, with --memory, by an in-process store. Use it as the product API when
developing the consoles.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogMemory, "memory", false, "Keep products in memory instead of PostgreSQL")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()
	defer log.Sync()

	var store catalog.Store
	if catalogMemory {
		store = catalog.NewMemoryStore()
		log.Info("Using in-memory catalog store")
	} else {
		db, err := database.Open(&appConfig.DB, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		gormStore, err := catalog.NewGormStore(db)
		if err != nil {
			return err
		}
		store = gormStore
	}

	e := newEcho()
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	var auth []echo.MiddlewareFunc
	if appConfig.JWT.Enabled() {
		auth = append(auth, mid.ServiceAuthMiddleware(jwtutil.NewJWTUtil(newJWTConfig())))
		log.Info("Service token authentication enabled")
	}
	catalog.NewHandler(store).RegisterRoutes(e, auth...)

	log.Info("Starting catalog API", zap.Bool("memory", catalogMemory))
	if err := runServer(cmd.Context(), e, appConfig.Catalog.Port); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

package handler

import (
	"context"
	"net/http"
	"time"

	"product-console/internal/console"
	"product-console/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const apiProbeTimeout = 5 * time.Second

// HealthHandler reports liveness and optionally probes the product API
type HealthHandler struct {
	api console.ProductAPI
	now func() time.Time
}

// NewHealthHandler creates a health handler
func NewHealthHandler(api console.ProductAPI) *HealthHandler {
	return &HealthHandler{api: api, now: time.Now}
}

// HealthCheck handles the health check endpoint. With ?check=api it also
// fetches the records endpoint and reports 503 when that fails.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	resp := echo.Map{
		"status": "ok",
		"time":   h.now().UTC().Format(time.RFC3339),
	}

	if c.QueryParam("check") != "api" {
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(logger.EchoContext(c), apiProbeTimeout)
	defer cancel()

	if _, err := h.api.ListProducts(ctx); err != nil {
		logger.FromEcho(c).Warn("Product API probe failed", zap.Error(err))
		resp["status"] = "degraded"
		resp["api"] = "unreachable"
		resp["error"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	resp["api"] = "ok"
	return c.JSON(http.StatusOK, resp)
}

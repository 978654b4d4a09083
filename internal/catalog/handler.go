package catalog

import (
	"errors"
	"net/http"

	"product-console/internal/model"
	"product-console/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves the records and uploads endpoints over a Store
type Handler struct {
	store Store
}

// NewHandler creates a catalog handler
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the catalog routes with optional middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.GET("/records", h.ListRecords, m...)
	e.POST("/uploads", h.Upload, m...)
}

// ListRecords returns every product ordered by ID
func (h *Handler) ListRecords(c echo.Context) error {
	log := logger.FromEcho(c)

	products, err := h.store.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// Upload adds one product
func (h *Handler) Upload(c echo.Context) error {
	log := logger.FromEcho(c)

	var product model.Product
	if err := c.Bind(&product); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	err := h.store.Create(c.Request().Context(), product)
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidProduct):
		log.Warn("Rejected product without ID", zap.Float64("product_id", product.ID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": ErrInvalidProduct.Error(),
		})
	case errors.Is(err, ErrDuplicateProduct):
		log.Warn("Product with this ID already exists", zap.Float64("product_id", product.ID))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": ErrDuplicateProduct.Error(),
		})
	default:
		log.Error("Failed to create product", zap.Float64("product_id", product.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	log.Info("Product created successfully",
		zap.Float64("product_id", product.ID),
		zap.String("product_name", product.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product added successfully",
		"product": product,
	})
}

package handler

import (
	"net/http"

	"product-console/internal/console"
	"product-console/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	flashCookie = "console_flash"
	flashAdded  = "added"
)

// ConsoleHandler serves the product page. Every request gets its own
// controller, so no page state is shared between browsers.
type ConsoleHandler struct {
	api console.ProductAPI
}

// NewConsoleHandler creates a handler backed by the given product API
func NewConsoleHandler(api console.ProductAPI) *ConsoleHandler {
	return &ConsoleHandler{api: api}
}

// RegisterRoutes mounts the page routes
func (h *ConsoleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Page)
	e.GET("/products", h.ListFragment)
	e.POST("/products", h.Submit)
}

// Page renders the full page after a fresh load. A pending flash from a
// successful submit is shown once as the success banner.
func (h *ConsoleHandler) Page(c echo.Context) error {
	ctrl := console.NewController(h.api, logger.FromEcho(c))
	ctrl.Load(logger.EchoContext(c))

	if cookie, err := c.Cookie(flashCookie); err == nil {
		if cookie.Value == flashAdded {
			ctrl.ShowAdded()
		}
		c.SetCookie(&http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true})
	}

	return c.Render(http.StatusOK, console.TemplatePage, ctrl.View())
}

// ListFragment renders only the product list
func (h *ConsoleHandler) ListFragment(c echo.Context) error {
	ctrl := console.NewController(h.api, logger.FromEcho(c))
	ctrl.Load(logger.EchoContext(c))

	status := http.StatusOK
	if ctrl.Banner() != nil {
		status = http.StatusBadGateway
	}
	return c.Render(status, console.TemplateList, ctrl.View())
}

// Submit runs the submit flow with the posted form. A failure re-renders the
// page with the form intact; success redirects to the page so a browser
// refresh cannot post the record again.
func (h *ConsoleHandler) Submit(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := logger.EchoContext(c)

	ctrl := console.NewController(h.api, log)
	// the page the form was posted from already showed the list
	ctrl.Load(ctx)
	ctrl.SetForm(console.Form{
		ID:       c.FormValue("id"),
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Price:    c.FormValue("price"),
		Stock:    c.FormValue("stock"),
	})

	product, err := ctrl.BeginSubmit()
	if err != nil {
		log.Info("Product submission rejected", zap.Error(err))
		return c.Render(http.StatusUnprocessableEntity, console.TemplatePage, ctrl.View())
	}

	_, err = h.api.CreateProduct(ctx, product)
	if !ctrl.CompleteSubmit(err) {
		log.Warn("Product submission failed", zap.Error(err))
		return c.Render(http.StatusBadGateway, console.TemplatePage, ctrl.View())
	}

	c.SetCookie(&http.Cookie{Name: flashCookie, Value: flashAdded, Path: "/", HttpOnly: true})
	return c.Redirect(http.StatusSeeOther, "/")
}

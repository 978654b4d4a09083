package handler

import (
	"fmt"
	"io"

	"product-console/internal/console"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer adapts the console renderer to echo.Renderer
type TemplateRenderer struct {
	renderer *console.Renderer
}

// NewTemplateRenderer parses the console templates
func NewTemplateRenderer() (*TemplateRenderer, error) {
	r, err := console.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse console templates: %w", err)
	}
	return &TemplateRenderer{renderer: r}, nil
}

// Render implements echo.Renderer
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	view, ok := data.(console.PageView)
	if !ok {
		return fmt.Errorf("template %q expects console.PageView, got %T", name, data)
	}
	return t.renderer.Render(w, name, view)
}

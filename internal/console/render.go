package console

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names understood by the Renderer
const (
	TemplatePage = "page"
	TemplateList = "list"
)

// Renderer draws a PageView as HTML
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded page templates
func NewRenderer() (*Renderer, error) {
	t, err := template.New("console").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with the view
func (r *Renderer) Render(w io.Writer, name string, view PageView) error {
	return r.templates.ExecuteTemplate(w, name, view)
}

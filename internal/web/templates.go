package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/badmarinesstudio/horizon-web/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "legal", "play", "account", "notfound"}

// Templates holds one parsed set per page, each sharing the base layout.
type Templates struct {
	pages map[string]*template.Template
}

func NewTemplates() (*Templates, error) {
	funcs := template.FuncMap{
		"path": i18n.Path,
	}
	t := &Templates{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

// Render writes the named page into w.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

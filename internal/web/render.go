// Package web renders the server-side HTML pages. Templates are embedded
// in the binary; each page is parsed together with the shared layout so a
// missing block fails at startup, not on first request.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"rentoverse-web/internal/countdown"
	"rentoverse-web/internal/lifecycle"

	"go.uber.org/zap"
)

//go:embed templates/*.html templates/pages/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	layouts, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob layouts: %w", err)
	}
	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		name := strings.TrimSuffix(path.Base(file), ".html")
		files := append(append([]string{}, layouts...), file)
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		log:   log.With(zap.String("component", "renderer")),
	}, nil
}

// Render writes a page. The template executes into a buffer first so a
// mid-render failure becomes a clean 500 instead of a torn page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.log.Error("Unknown page template", zap.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		r.log.Error("Template execution failed",
			zap.String("page", page),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Static serves the embedded assets under /static/.
func Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

var funcMap = template.FuncMap{
	"badgeClass": func(token lifecycle.BadgeToken) string {
		return "badge badge-" + string(token)
	},
	"countdownPlaceholder": func() string { return countdown.Placeholder },
}

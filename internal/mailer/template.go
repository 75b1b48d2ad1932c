package mailer

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
)

// Renderer renders HTML email bodies from a directory of templates.
// Templates are parsed once at startup; Render addresses them by filename.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse email templates in %q: %w", dir, err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with the given data.
func (r *Renderer) Render(name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}
	return sb.String(), nil
}

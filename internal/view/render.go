package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders composed trees with the embedded templates.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{md: goldmark.New()}

	tmpl, err := template.New("view").Funcs(template.FuncMap{
		"markdown": r.inlineMarkdown,
		"comma":    humanize.Comma,
		"money":    func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"upper":    strings.ToUpper,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Page writes a complete HTML document.
func (r *Renderer) Page(w io.Writer, t Tree) error {
	return r.tmpl.ExecuteTemplate(w, "page", t)
}

// Fragment returns the markup that replaces the application root when a
// live view re-renders.
func (r *Renderer) Fragment(t Tree) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "app", t); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// inlineMarkdown renders a short note. Raw HTML in the source is dropped
// by goldmark's default renderer.
func (r *Renderer) inlineMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out)
}

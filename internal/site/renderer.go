package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/pages"
)

// viewData is what every template receives.
type viewData struct {
	Layout     pages.Layout
	Page       any
	LiveReload bool
}

// Renderer executes the page templates. It is safe for concurrent use once
// constructed.
type Renderer struct {
	md         goldmark.Markdown
	pages      map[string]*template.Template
	LiveReload bool
}

// NewRenderer parses the layout and every page template.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		pages: make(map[string]*template.Template, len(pageTemplates)),
	}

	base, err := template.New("layout").Funcs(r.funcs()).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	for name, src := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.markdown,
		"currency": func(v float64) string { return format.Currency(v) },
		"number":   number,
		"json":     toJSON,
		"fixed":    format.Fixed,
		"pct":      func(v float64) string { return format.Fixed(v, 1) + "%" },
		"add":      func(a, b int) int { return a + b },
		"upper":    strings.ToUpper,
		"join":     strings.Join,
		"percentOf": func(v, max int) float64 {
			if max <= 0 {
				return 0
			}
			return float64(v) / float64(max) * 100
		},
	}
}

// Render writes the named page inside the shared layout.
func (r *Renderer) Render(w io.Writer, name string, layout pages.Layout, page any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}
	var buf bytes.Buffer
	data := viewData{Layout: layout, Page: page, LiveReload: r.LiveReload}
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Redirect writes a page that forwards the browser to target.
func (r *Renderer) Redirect(w io.Writer, target string) error {
	return r.Render(w, "redirect", pages.Layout{}, target)
}

func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func number(v any) string {
	switch n := v.(type) {
	case int:
		return format.Number(float64(n))
	case float64:
		return format.Number(n)
	default:
		return fmt.Sprint(v)
	}
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/progress"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// Generator exports the whole report as a static site.
type Generator struct {
	Builder   *pages.Builder
	OutputDir string
	Reporter  progress.Reporter
	Logger    *zap.Logger

	renderer *Renderer
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(b *pages.Builder, outputDir string) (*Generator, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Generator{
		Builder:   b,
		OutputDir: outputDir,
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
		renderer:  r,
	}, nil
}

// Generate writes every page, the static assets and the API documents.
// Returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	all, err := AllPages(g.Builder)
	if err != nil {
		return 0, err
	}
	api, err := APIFiles(g.Builder)
	if err != nil {
		return 0, fmt.Errorf("building api files: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	redirects := Redirects()
	total := len(all) + len(redirects) + len(api) + 2
	g.Reporter.Start(total)
	defer g.Reporter.Finish()
	step := 0
	tick := func(msg string) {
		step++
		g.Reporter.Update(step, msg)
	}

	for _, p := range all {
		if err := g.writePage(p); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", p.Path, err)
		}
		tick(p.Path)
	}

	for _, rd := range redirects {
		var buf bytes.Buffer
		if err := g.renderer.Redirect(&buf, rd.To); err != nil {
			return 0, err
		}
		if err := g.write(routeFile(rd.From), buf.Bytes()); err != nil {
			return 0, err
		}
		tick(rd.From)
	}

	if err := g.write("static/style.css", []byte(cssContent)); err != nil {
		return 0, err
	}
	tick("/static/style.css")
	if err := g.write("static/app.js", []byte(jsContent)); err != nil {
		return 0, err
	}
	tick("/static/app.js")

	for _, f := range api {
		data, err := encodeAPI(f)
		if err != nil {
			return 0, fmt.Errorf("encoding %s: %w", f.Path, err)
		}
		if err := g.write(strings.TrimPrefix(f.Path, "/"), data); err != nil {
			return 0, err
		}
		tick(f.Path)
	}

	g.Logger.Info("static site generated",
		zap.String("output", g.OutputDir),
		zap.Int("pages", len(all)),
		zap.Int("api_files", len(api)),
	)
	return len(all), nil
}

// Redirect is a permanent move from one route to another.
type Redirect struct {
	From string
	To   string
}

// Redirects lists the routes the live server answers with a 301: retired
// entity slugs and the default comparison's own key.
func Redirects() []Redirect {
	aliases := report.LegacySlugs()
	old := make([]string, 0, len(aliases))
	for from := range aliases {
		old = append(old, from)
	}
	sort.Strings(old)

	out := make([]Redirect, 0, len(old)+1)
	for _, from := range old {
		out = append(out, Redirect{From: pages.EntityPath(from), To: pages.EntityPath(aliases[from])})
	}
	out = append(out, Redirect{
		From: "/compare/" + report.DefaultComparison,
		To:   pages.ComparePath(report.DefaultComparison),
	})
	return out
}

func (g *Generator) writePage(p Page) error {
	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, p.Template, g.Builder.Layout(p.Path, p.Meta), p.Data); err != nil {
		return err
	}
	return g.write(routeFile(p.Path), buf.Bytes())
}

func (g *Generator) write(rel string, data []byte) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	g.Logger.Debug("writing file", zap.String("path", outPath))
	return os.WriteFile(outPath, data, 0o644)
}

// routeFile maps a route to the file that serves it: "/" is index.html,
// "/team" is team/index.html and the 404 page is 404.html.
func routeFile(route string) string {
	switch route {
	case "/":
		return "index.html"
	case NotFoundPath:
		return "404.html"
	}
	return strings.Trim(route, "/") + "/index.html"
}

func encodeAPI(f APIFile) ([]byte, error) {
	if s, ok := f.Body.(string); ok {
		return []byte(s), nil
	}
	return json.MarshalIndent(f.Body, "", "  ")
}

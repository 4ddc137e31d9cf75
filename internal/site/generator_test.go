package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

func testBuilder(t *testing.T) *pages.Builder {
	t.Helper()
	ds, err := report.LoadDir("")
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}
	return pages.New(ds, pages.Site{
		Title:         "BHC Annual Report",
		Organization:  "Black Hills Consortium",
		Year:          2026,
		ContactEmail:  "hello@example.com",
		InvestorEmail: "invest@example.com",
	})
}

func generate(t *testing.T) (string, int) {
	t.Helper()
	outDir := t.TempDir()
	g, err := NewGenerator(testBuilder(t), outDir)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	count, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return outDir, count
}

func readFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestGenerate(t *testing.T) {
	outDir, count := generate(t)

	// 7 fixed pages, 13 entities, 2 comparisons and the 404 page.
	if count != 23 {
		t.Errorf("page count = %d, want 23", count)
	}

	expected := []string{
		"index.html",
		"financials/index.html",
		"flywheel/index.html",
		"team/index.html",
		"goals/index.html",
		"investors/index.html",
		"print/index.html",
		"entity/growwise/index.html",
		"entity/grow-campus/index.html",
		"entity/delegate-iq/index.html",
		"compare/index.html",
		"compare/bhb/index.html",
		"compare/elevate/index.html",
		"404.html",
		"static/style.css",
		"static/app.js",
		"api/entities.json",
		"api/entities/growwise.json",
		"api/metrics.json",
		"api/goals.json",
		"api/flywheel.json",
		"api/flywheel.mmd",
	}
	for _, f := range expected {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(f))); os.IsNotExist(err) {
			t.Errorf("expected output file %s to exist", f)
		}
	}
}

func TestGeneratePageContent(t *testing.T) {
	outDir, _ := generate(t)

	tests := []struct {
		file string
		want []string
	}{
		{"index.html", []string{
			"<title>BHC Annual Report 2026 | Black Hills Consortium</title>",
			"13 Entities.",
			`href="/entity/growwise"`,
			"mailto:hello@example.com",
		}},
		{"entity/growwise/index.html", []string{
			"<title>FlowBot — BHC Annual Report</title>",
			"<h1>FlowBot</h1>",
			"Operational",
			`data-chart="projection"`,
		}},
		{"compare/index.html", []string{"Elevate Rapid City", `href="/compare/bhb"`}},
		{"compare/bhb/index.html", []string{"Black Hills &amp; Badlands", `href="/compare"`}},
		{"flywheel/index.html", []string{`viewBox="0 0 600 600"`, "marker-end"}},
		{"print/index.html", []string{"data-print", "Entity Portfolio"}},
		{"404.html", []string{"Page Not Found"}},
		{"entity/delegate-iq/index.html", []string{`url=/entity/delegate-digital`}},
		{"compare/elevate/index.html", []string{`url=/compare"`}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			html := readFile(t, outDir, tt.file)
			for _, w := range tt.want {
				if !strings.Contains(html, w) {
					t.Errorf("%s missing %q", tt.file, w)
				}
			}
		})
	}
}

func TestGenerateNoLiveReload(t *testing.T) {
	outDir, _ := generate(t)
	if strings.Contains(readFile(t, outDir, "index.html"), "data-live-reload") {
		t.Error("static export should not enable live reload")
	}
}

func TestGenerateAPI(t *testing.T) {
	outDir, _ := generate(t)

	var entities []report.Entity
	if err := json.Unmarshal([]byte(readFile(t, outDir, "api/entities.json")), &entities); err != nil {
		t.Fatalf("decoding entities: %v", err)
	}
	if len(entities) != 13 {
		t.Errorf("entities = %d, want 13", len(entities))
	}

	var entity EntityAPI
	if err := json.Unmarshal([]byte(readFile(t, outDir, "api/entities/growwise.json")), &entity); err != nil {
		t.Fatalf("decoding entity: %v", err)
	}
	if entity.Slug != "growwise" || entity.StatusLabel != "Operational" {
		t.Errorf("entity = %s/%s", entity.Slug, entity.StatusLabel)
	}
	if len(entity.Projection) != 5 {
		t.Errorf("projection points = %d, want 5", len(entity.Projection))
	}

	mmd := readFile(t, outDir, "api/flywheel.mmd")
	if !strings.HasPrefix(mmd, "graph TD") {
		t.Errorf("mermaid export should start with graph TD, got %q", mmd[:min(len(mmd), 20)])
	}
}

func TestRouteFile(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/", "index.html"},
		{"/team", "team/index.html"},
		{"/entity/growwise", "entity/growwise/index.html"},
		{"/compare/bhb", "compare/bhb/index.html"},
		{NotFoundPath, "404.html"},
	}
	for _, tt := range tests {
		if got := routeFile(tt.route); got != tt.want {
			t.Errorf("routeFile(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestRedirects(t *testing.T) {
	want := map[string]string{
		"/entity/delegate-iq": "/entity/delegate-digital",
		"/compare/elevate":    "/compare",
	}
	got := Redirects()
	if len(got) != len(want) {
		t.Fatalf("Redirects() = %v, want %d entries", got, len(want))
	}
	for _, rd := range got {
		if want[rd.From] != rd.To {
			t.Errorf("redirect %s -> %s, want %s", rd.From, rd.To, want[rd.From])
		}
	}
}

func TestRendererUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "missing", pages.Layout{}, nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestRendererMarkdown(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	got := string(r.markdown("**Bold** move"))
	if !strings.Contains(got, "<strong>Bold</strong>") {
		t.Errorf("markdown = %q", got)
	}
}

func TestStaticHandler(t *testing.T) {
	outDir, _ := generate(t)
	srv := httptest.NewServer(StaticHandler(outDir))
	defer srv.Close()

	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/team/", http.StatusOK},
		{"/static/style.css", http.StatusOK},
		{"/entity/nope/", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s = %d, want %d", tt.path, resp.StatusCode, tt.status)
		}
	}
}

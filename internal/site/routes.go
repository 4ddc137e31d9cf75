package site

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/blackhillsconsortium/annualreport/internal/flywheel"
	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// NotFoundPath is the pseudo route of the 404 page.
const NotFoundPath = "/404"

// Page is a renderable route: the template to use and the data to feed it.
type Page struct {
	Path     string
	Template string
	Meta     pages.Meta
	Data     any
}

// HomePage is the landing page route.
func HomePage(b *pages.Builder) Page {
	p := b.Home()
	return Page{Path: "/", Template: "home", Meta: p.Meta, Data: p}
}

// EntityPage is the detail route of slug. Unknown slugs return report.ErrNotFound.
func EntityPage(b *pages.Builder, slug string) (Page, error) {
	p, err := b.Entity(slug)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: pages.EntityPath(p.Entity.Slug), Template: "entity", Meta: p.Meta, Data: p}, nil
}

// FinancialsPage is the financials route.
func FinancialsPage(b *pages.Builder) Page {
	p := b.Financials()
	return Page{Path: "/financials", Template: "financials", Meta: p.Meta, Data: p}
}

// ComparePage is the comparison route of key. Unknown keys return report.ErrNotFound.
func ComparePage(b *pages.Builder, key string) (Page, error) {
	p, err := b.Compare(key)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: pages.ComparePath(p.Key), Template: "compare", Meta: p.Meta, Data: p}, nil
}

// FlywheelPage is the flywheel route with focus highlighted.
func FlywheelPage(b *pages.Builder, focus string) Page {
	p := b.Flywheel(focus)
	return Page{Path: "/flywheel", Template: "flywheel", Meta: p.Meta, Data: p}
}

// GoalsPage is the goals route.
func GoalsPage(b *pages.Builder) Page {
	p := b.Goals()
	return Page{Path: "/goals", Template: "goals", Meta: p.Meta, Data: p}
}

// InvestorsPage is the investors route.
func InvestorsPage(b *pages.Builder) Page {
	p := b.Investors()
	return Page{Path: "/investors", Template: "investors", Meta: p.Meta, Data: p}
}

// TeamPage is the team route.
func TeamPage(b *pages.Builder) Page {
	p := b.Team()
	return Page{Path: "/team", Template: "team", Meta: p.Meta, Data: p}
}

// PrintPage is the printable report route.
func PrintPage(b *pages.Builder) Page {
	p := b.Print()
	return Page{Path: "/print", Template: "print", Meta: p.Meta, Data: p}
}

// NotFoundPage is the 404 page for the missing name.
func NotFoundPage(b *pages.Builder, name string) Page {
	p := b.NotFound(name)
	return Page{Path: NotFoundPath, Template: "notfound", Meta: p.Meta, Data: p}
}

// AllPages lists every route of the report in navigation order, followed by
// the entity and comparison pages and the 404 page.
func AllPages(b *pages.Builder) ([]Page, error) {
	ds := b.Dataset()
	out := []Page{
		HomePage(b),
		FinancialsPage(b),
		FlywheelPage(b, ""),
		TeamPage(b),
		GoalsPage(b),
		InvestorsPage(b),
		PrintPage(b),
	}
	for _, e := range ds.Entities {
		p, err := EntityPage(b, e.Slug)
		if err != nil {
			return nil, fmt.Errorf("building entity page %s: %w", e.Slug, err)
		}
		out = append(out, p)
	}
	for _, key := range ds.ComparisonKeys() {
		p, err := ComparePage(b, key)
		if err != nil {
			return nil, fmt.Errorf("building comparison %s: %w", key, err)
		}
		out = append(out, p)
	}
	out = append(out, NotFoundPage(b, ""))
	return out, nil
}

// RenderPage writes p inside the layout built for its path.
func (r *Renderer) RenderPage(w http.ResponseWriter, b *pages.Builder, p Page, status int) error {
	var buf strings.Builder
	if err := r.Render(&buf, p.Template, b.Layout(p.Path, p.Meta), p.Data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(buf.String()))
	return err
}

// APIFile is a JSON (or text) document published under /api.
type APIFile struct {
	Path        string
	ContentType string
	Body        any
}

// EntityAPI is the payload of /api/entities/{slug}.
type EntityAPI struct {
	report.Entity
	StatusLabel string                  `json:"statusLabel"`
	Projection  []pages.ProjectionPoint `json:"projection"`
	Related     []string                `json:"related"`
}

// EntityPayload is the /api/entities/{slug} document.
func EntityPayload(ds *report.Dataset, slug string) (EntityAPI, error) {
	e, err := ds.Entity(slug)
	if err != nil {
		return EntityAPI{}, err
	}
	out := EntityAPI{Entity: e, StatusLabel: e.Status.Label(), Projection: pages.Projection(e)}
	for _, r := range ds.Related(e.Slug, 3) {
		out.Related = append(out.Related, r.Slug)
	}
	return out, nil
}

// GoalsAPI is the payload of /api/goals.
type GoalsAPI struct {
	AverageCompletion int       `json:"averageCompletion"`
	Goals             []GoalAPI `json:"goals"`
}

// GoalAPI is a goal with its completion percentage.
type GoalAPI struct {
	report.Goal
	Percent int `json:"percent"`
}

// GoalsPayload is the /api/goals document.
func GoalsPayload(b *pages.Builder) GoalsAPI {
	g := b.Goals()
	out := GoalsAPI{AverageCompletion: g.AverageCompletion}
	for _, row := range g.Goals {
		out.Goals = append(out.Goals, GoalAPI{Goal: row.Goal, Percent: row.Percent})
	}
	return out
}

// FlywheelAPI is the payload of /api/flywheel.
type FlywheelAPI struct {
	Percentage float64          `json:"percentage"`
	EquityFlow float64          `json:"equityFlow"`
	Diagram    flywheel.Diagram `json:"diagram"`
	Steps      []flywheel.Step  `json:"steps"`
}

// FlywheelPayload is the /api/flywheel document. An unknown focus is dropped.
func FlywheelPayload(ds *report.Dataset, focus string) FlywheelAPI {
	f := ds.Flywheel
	if _, ok := f.Node(focus); !ok {
		focus = ""
	}
	return FlywheelAPI{
		Percentage: f.Percentage,
		EquityFlow: f.EquityFlow(),
		Diagram:    flywheel.Build(f, focus),
		Steps:      flywheel.Steps(f),
	}
}

// APIFiles lists every API document for static export.
func APIFiles(b *pages.Builder) ([]APIFile, error) {
	ds := b.Dataset()
	files := []APIFile{
		{Path: "/api/entities.json", Body: ds.Entities},
		{Path: "/api/metrics.json", Body: ds.Metrics},
		{Path: "/api/goals.json", Body: GoalsPayload(b)},
		{Path: "/api/flywheel.json", Body: FlywheelPayload(ds, "")},
		{Path: "/api/flywheel.mmd", ContentType: "text/plain", Body: flywheel.Mermaid(ds.Flywheel)},
	}
	for _, e := range ds.Entities {
		p, err := EntityPayload(ds, e.Slug)
		if err != nil {
			return nil, err
		}
		files = append(files, APIFile{Path: "/api/entities/" + e.Slug + ".json", Body: p})
	}
	return files, nil
}

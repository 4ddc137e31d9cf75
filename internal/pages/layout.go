// Package pages builds the view model for every route of the report.
package pages

import (
	"strconv"
	"strings"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// Site carries the branding used in titles, the header and the footer.
type Site struct {
	Title         string
	Organization  string
	Year          int
	ContactEmail  string
	InvestorEmail string
}

// Meta is the document title and description of a page.
type Meta struct {
	Title       string
	Description string
}

// NavLink is a header navigation entry.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// FooterColumn groups entity links by category.
type FooterColumn struct {
	Title string
	Links []NavLink
}

// Layout is the chrome shared by every page.
type Layout struct {
	Site        Site
	Meta        Meta
	Path        string
	Nav         []NavLink
	Footer      []FooterColumn
	FooterLinks []NavLink
}

// Counter is an animated number with its server-rendered final text.
type Counter struct {
	format.Display
	Label    string
	Sublabel string
	Text     string
}

func moneyCounter(d format.Display, label, sublabel string) Counter {
	return Counter{Display: d, Label: label, Sublabel: sublabel, Text: d.String()}
}

func numberCounter(n float64, label, sublabel string) Counter {
	return Counter{Display: format.Display{End: n}, Label: label, Sublabel: sublabel, Text: format.Number(n)}
}

// Builder produces page view models from an immutable dataset.
type Builder struct {
	ds   *report.Dataset
	site Site
}

// New returns a Builder over ds branded with site.
func New(ds *report.Dataset, site Site) *Builder {
	return &Builder{ds: ds, site: site}
}

// Dataset returns the dataset the builder renders.
func (b *Builder) Dataset() *report.Dataset { return b.ds }

// Site returns the branding.
func (b *Builder) Site() Site { return b.site }

var navLinks = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/entity/growwise", Label: "Entities"},
	{Href: "/financials", Label: "Financials"},
	{Href: "/compare", Label: "Compare"},
	{Href: "/flywheel", Label: "Flywheel"},
	{Href: "/team", Label: "Team"},
	{Href: "/goals", Label: "Goals"},
	{Href: "/investors", Label: "Investors"},
}

// footerGroups maps footer headings to the entity categories listed under them.
var footerGroups = []struct {
	title      string
	categories []string
}{
	{"Technology", []string{"Technology"}},
	{"Community", []string{"Community"}},
	{"Real Estate", []string{"Real Estate"}},
	{"Education & Media", []string{"Education", "Media"}},
}

// Layout returns the shared chrome for the page at path.
func (b *Builder) Layout(path string, meta Meta) Layout {
	l := Layout{Site: b.site, Meta: meta, Path: path}
	if l.Meta.Title == "" {
		l.Meta = b.defaultMeta()
	}

	for _, link := range navLinks {
		link.Active = navActive(link.Href, path)
		l.Nav = append(l.Nav, link)
	}

	byCategory := b.ds.EntitiesByCategory()
	for _, g := range footerGroups {
		col := FooterColumn{Title: g.title}
		for _, c := range g.categories {
			for _, e := range byCategory[c] {
				col.Links = append(col.Links, NavLink{Href: EntityPath(e.Slug), Label: e.Name})
			}
		}
		l.Footer = append(l.Footer, col)
	}

	l.FooterLinks = []NavLink{
		{Href: "/financials", Label: "Financials"},
		{Href: "/investors", Label: "Investors"},
		{Href: "/print", Label: "Print Report"},
	}
	return l
}

func navActive(href, path string) bool {
	switch {
	case href == "/":
		return path == "/"
	case strings.HasPrefix(href, "/entity/"):
		return strings.HasPrefix(path, "/entity/")
	default:
		return path == href || strings.HasPrefix(path, href+"/")
	}
}

func (b *Builder) defaultMeta() Meta {
	m := b.ds.Metrics
	return Meta{
		Title: b.site.Title + " " + strconv.Itoa(b.site.Year) + " | " + b.site.Organization,
		Description: format.Number(float64(m.Entities)) + " entities. " +
			format.Currency(m.CapitalRaise) + " capital raise. " +
			format.Currency(m.RevenueY1Floor, format.WithDecimals(2)) + "–" +
			format.Currency(m.RevenueY1Ceiling) + " Year 1 revenue. Interactive annual report from the " +
			b.site.Organization + ".",
	}
}

func (b *Builder) pageMeta(title, description string) Meta {
	return Meta{Title: title + " — " + b.site.Title, Description: description}
}

// EntityPath is the route of an entity detail page.
func EntityPath(slug string) string {
	return "/entity/" + slug
}

// ComparePath is the route of a comparison. The default comparison lives at
// /compare.
func ComparePath(key string) string {
	if key == report.DefaultComparison {
		return "/compare"
	}
	return "/compare/" + key
}

// NotFound is the view model for a missing page.
type NotFound struct {
	Meta Meta
	Name string
}

// NotFound describes a missing entity or comparison.
func (b *Builder) NotFound(slug string) NotFound {
	name := format.TitleFromSlug(slug)
	if name == "" {
		name = "Page"
	}
	return NotFound{
		Meta: b.pageMeta(name+" Not Found", "The page you requested does not exist."),
		Name: name,
	}
}

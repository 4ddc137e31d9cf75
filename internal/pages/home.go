package pages

import (
	"strconv"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// EntityCard is an entity tile in a grid.
type EntityCard struct {
	Slug      string
	Name      string
	ShortName string
	Tagline   string
	Color     string
	Category  string
	RevenueY1 string
}

func entityCard(e report.Entity) EntityCard {
	return EntityCard{
		Slug:      e.Slug,
		Name:      e.Name,
		ShortName: e.ShortName,
		Tagline:   e.Tagline,
		Color:     e.Color,
		Category:  e.Category,
		RevenueY1: format.Currency(e.RevenueY1Floor, format.WithDecimals(2)),
	}
}

// MiniStep is a step of the home page flywheel summary.
type MiniStep struct {
	Number int
	Label  string
	Value  string
	Color  string
}

// TeaserRow is a row of the home page comparison teaser.
type TeaserRow struct {
	Label string
	Value string
}

// Home is the landing page.
type Home struct {
	Meta          Meta
	EntityCount   int
	CapitalRaise  string
	RevenueRange  string
	Metrics       []Counter
	Entities      []EntityCard
	FlywheelPct   string
	FlywheelText  string
	Flywheel      []MiniStep
	Competitor    string
	BHCRows       []TeaserRow
	CompetitorRow []TeaserRow
	ContactEmail  string
}

const teaserRows = 5

// Home builds the landing page.
func (b *Builder) Home() Home {
	m := b.ds.Metrics
	fw := b.ds.Flywheel
	dist := b.ds.Financials.Aggregate.FlywheelDistribution

	h := Home{
		Meta:         b.defaultMeta(),
		EntityCount:  m.Entities,
		CapitalRaise: format.Currency(m.CapitalRaise),
		RevenueRange: format.Currency(m.RevenueY1Floor, format.WithDecimals(2)) + "–" + format.Currency(m.RevenueY1Ceiling),
		ContactEmail: b.site.ContactEmail,
		FlywheelPct:  format.Fixed(fw.Percentage, 0) + "%",
	}

	h.Metrics = []Counter{
		moneyCounter(format.Display{End: m.RevenueY1Floor / 1_000_000, Prefix: "$", Suffix: "M", Decimals: 2}, "Revenue Y1", "V6 Floor"),
		numberCounter(float64(m.Entities), "Entities", "Integrated Ecosystem"),
		numberCounter(float64(m.CRMAccounts), "CRM Accounts", "Active Pipeline"),
		numberCounter(float64(m.Staff), "Staff", "Output like "+strconv.Itoa(m.StaffAIEquivalent)+" with AI"),
		numberCounter(float64(m.PartnerCities), "Partner Cities", "SD + WY"),
		numberCounter(float64(m.CampusAcres), "Campus Acres", "Custer, SD"),
	}

	for _, e := range b.ds.Entities {
		h.Entities = append(h.Entities, entityCard(e))
	}

	sourceName := fw.Source
	var sourceRevenue float64
	if src, err := b.ds.Entity(fw.Source); err == nil {
		sourceName = src.Name
		sourceRevenue = src.RevenueY1Floor
	}
	flow := format.Currency(fw.EquityFlow(), format.WithDecimals(2))
	h.FlywheelText = sourceName + " distributes " + h.FlywheelPct + " of revenue, " +
		format.Fixed(dist.AuricLabs, 0) + "% each to Auric Labs, Seed Foundation and BHC, creating " +
		flow + " in automatic downstream funding that powers the entire ecosystem."
	h.Flywheel = []MiniStep{
		{1, sourceName + " Revenue", format.Currency(sourceRevenue, format.WithDecimals(2)), "#22c55e"},
		{2, h.FlywheelPct + " Equity Flow", flow, "#059669"},
		{3, "Funds Operations", strconv.Itoa(m.Entities) + " Entities", "#06b6d4"},
		{4, "Content & Growth", "Attracts More", "#3b82f6"},
	}

	if c, err := b.ds.Comparison(report.DefaultComparison); err == nil {
		h.Competitor = c.Title()
		for i, dp := range c.DataPoints {
			if i == teaserRows {
				break
			}
			h.BHCRows = append(h.BHCRows, TeaserRow{dp.Metric, dp.BHCValue})
			h.CompetitorRow = append(h.CompetitorRow, TeaserRow{dp.Metric, dp.CompetitorValue})
		}
	}
	return h
}

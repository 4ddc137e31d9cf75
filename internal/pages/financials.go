package pages

import (
	"sort"
	"strconv"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

const (
	fallbackColor   = "#6b7280"
	barNameMax      = 12
	pieLabelMinimum = 5
)

// BarDatum is one entity in the Y1 floor bar chart.
type BarDatum struct {
	Name     string  `json:"name"`
	FullName string  `json:"fullName"`
	Floor    float64 `json:"floor"`
	Ceiling  float64 `json:"ceiling"`
	Color    string  `json:"color"`
}

// PieSlice is one entity's share of the Y1 floor.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// Recipient receives a share of the flywheel distribution.
type Recipient struct {
	Name        string
	Percent     float64
	Description string
}

// PricingTier is a published price point.
type PricingTier struct {
	Name        string
	Amount      float64
	Price       string
	Description string
}

func pricingTier(name string, amount float64, desc string) PricingTier {
	return PricingTier{Name: name, Amount: amount, Price: format.Currency(amount, format.WithCompact(false)), Description: desc}
}

// FinancialsPage is the financial breakdown.
type FinancialsPage struct {
	Meta        Meta
	Cards       []Counter
	ValuationY1 string
	ValuationY5 string
	Bars        []BarDatum
	Pie         []PieSlice
	FlywheelPct float64
	Recipients  []Recipient
	Pricing     []PricingTier
}

// Financials builds the financials page.
func (b *Builder) Financials() FinancialsPage {
	fin := b.ds.Financials
	agg := fin.Aggregate

	return FinancialsPage{
		Meta:        b.pageMeta("Financial Breakdown", "Complete financial overview of the "+b.site.Organization+" ecosystem"),
		ValuationY1: valuationRange(agg.ValuationY1Low, agg.ValuationY1High),
		ValuationY5: valuationRange(agg.ValuationY5Low, agg.ValuationY5High),
		Bars:        b.BarChart(),
		Pie:         b.PieChart(),
		FlywheelPct: agg.FlywheelPercentage,
		Cards: []Counter{
			moneyCounter(format.CountUp(agg.RevenueY1Floor, 2), "Y1 Revenue Floor", "V6 conservative"),
			moneyCounter(format.CountUp(agg.RevenueY1Ceiling, 2), "Y1 Revenue Ceiling", "V4 full potential"),
			moneyCounter(format.CountUp(agg.RevenueY5Floor, 2), "Y5 Revenue Floor", "V6 conservative"),
			moneyCounter(format.CountUp(agg.RevenueY5Ceiling, 2), "Y5 Revenue Ceiling", "V4 full potential"),
			moneyCounter(format.CountUp(agg.CapitalRaise, 2), "Capital Raise", "Current round"),
		},
		Recipients: []Recipient{
			{"Auric Labs", agg.FlywheelDistribution.AuricLabs, "AI-native startup accelerator. Funds portfolio companies and innovation programs."},
			{"Seed Foundation", agg.FlywheelDistribution.SeedFoundation, "501(c)(3) charitable arm. Funds scholarships, grants and community programs."},
			{"BHC", agg.FlywheelDistribution.BHC, "Regional coordination. Funds shared services, the capital raise and ecosystem operations."},
		},
		Pricing: []PricingTier{
			pricingTier("Starter", fin.Pricing.Starter, "Per month"),
			pricingTier("Solo", fin.Pricing.Solo, "Per month"),
			pricingTier("Growth", fin.Pricing.Growth, "Per location / month"),
			pricingTier("Enterprise", fin.Pricing.Enterprise, "Per location / month"),
			pricingTier("MSO", fin.Pricing.MSO, "Per location / month"),
		},
	}
}

func valuationRange(low, high float64) string {
	return format.Currency(low) + " – " + format.Currency(high)
}

// BarChart lists the entity breakdown by descending Y1 floor.
func (b *Builder) BarChart() []BarDatum {
	rows := sortedBreakdown(b.ds.Financials.EntityBreakdown)
	bars := make([]BarDatum, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, BarDatum{
			Name:     format.Truncate(r.Name, barNameMax),
			FullName: r.Name,
			Floor:    r.RevenueY1Floor,
			Ceiling:  r.RevenueY1Ceiling,
			Color:    b.ds.EntityColor(r.Slug, fallbackColor),
		})
	}
	return bars
}

// PieChart lists entities with a positive share of the Y1 floor, largest
// first. Only slices above 5% carry a label.
func (b *Builder) PieChart() []PieSlice {
	var slices []PieSlice
	for _, r := range b.ds.Financials.EntityBreakdown {
		if r.ShareOfY1Floor <= 0 {
			continue
		}
		s := PieSlice{Name: r.Name, Value: r.ShareOfY1Floor, Color: b.ds.EntityColor(r.Slug, fallbackColor)}
		if s.Value > pieLabelMinimum {
			s.Label = r.Name + " " + strconv.FormatFloat(s.Value, 'f', -1, 64) + "%"
		}
		slices = append(slices, s)
	}
	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Value > slices[j].Value })
	return slices
}

func sortedBreakdown(in []report.BreakdownEntry) []report.BreakdownEntry {
	out := append([]report.BreakdownEntry(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RevenueY1Floor > out[j].RevenueY1Floor })
	return out
}

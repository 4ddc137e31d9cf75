package pages

import (
	"strings"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// MultiplierCard highlights an "Nx" advantage found in the comparison notes.
type MultiplierCard struct {
	format.Multiplier
	Text string
}

// CompareBar is a metric where both sides parse as numbers.
type CompareBar struct {
	Metric            string  `json:"metric"`
	BHC               float64 `json:"bhc"`
	Competitor        float64 `json:"competitor"`
	BHCPercent        float64 `json:"bhcPercent"`
	CompetitorPercent float64 `json:"competitorPercent"`
}

// ComparePage is a head-to-head against one competitor.
type ComparePage struct {
	Meta        Meta
	Key         string
	Data        report.Comparison
	Title       string
	ShortName   string
	Multipliers []MultiplierCard
	SummaryLead string
	SummaryRest string
	Bars        []CompareBar
	Others      []NavLink
}

// Compare builds the comparison stored under key. An empty key selects the
// default comparison.
func (b *Builder) Compare(key string) (ComparePage, error) {
	if key == "" {
		key = report.DefaultComparison
	}
	c, err := b.ds.Comparison(key)
	if err != nil {
		return ComparePage{}, err
	}

	title := "BHC vs " + c.Title()
	p := ComparePage{
		Meta: b.pageMeta(title, "Side-by-side comparison of "+b.site.Organization+" and "+
			c.CompetitorName+": revenue, entities, technology and impact."),
		Key:       key,
		Data:      c,
		Title:     title,
		ShortName: format.ShortCompetitorName(c.CompetitorName),
		Bars:      CompareBars(c.DataPoints),
	}
	p.SummaryLead, p.SummaryRest = SplitSummary(c.Summary)

	for _, m := range format.ExtractMultipliers(c.DataPoints) {
		p.Multipliers = append(p.Multipliers, MultiplierCard{Multiplier: m, Text: format.Fixed(m.Value, m.Decimals) + "x"})
	}

	for _, other := range b.ds.ComparisonKeys() {
		if other == key {
			continue
		}
		oc, _ := b.ds.Comparison(other)
		p.Others = append(p.Others, NavLink{Href: ComparePath(other), Label: "BHC vs " + oc.Title()})
	}
	return p, nil
}

// SplitSummary splits a summary after its first sentence. Without a ". "
// the whole summary is the lead.
func SplitSummary(summary string) (lead, rest string) {
	i := strings.Index(summary, ". ")
	if i < 0 {
		return summary, ""
	}
	return summary[:i+1], strings.TrimSpace(summary[i+1:])
}

// CompareBars keeps the rows where both values parse as numbers and scales
// each side against the larger of the pair.
func CompareBars(points []report.DataPoint) []CompareBar {
	var bars []CompareBar
	for _, dp := range points {
		bhc, ok := format.ExtractNumber(dp.BHCValue)
		if !ok {
			continue
		}
		comp, ok := format.ExtractNumber(dp.CompetitorValue)
		if !ok {
			continue
		}
		bar := CompareBar{Metric: dp.Metric, BHC: bhc, Competitor: comp}
		if top := max(bhc, comp); top > 0 {
			bar.BHCPercent = bhc / top * 100
			bar.CompetitorPercent = comp / top * 100
		}
		bars = append(bars, bar)
	}
	return bars
}

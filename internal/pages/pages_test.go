package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackhillsconsortium/annualreport/internal/report"
)

func testSite() Site {
	return Site{
		Title:         "BHC Annual Report",
		Organization:  "Black Hills Consortium",
		Year:          2026,
		ContactEmail:  "hello@example.com",
		InvestorEmail: "invest@example.com",
	}
}

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	ds, err := report.LoadDir("")
	require.NoError(t, err)
	return New(ds, testSite())
}

func TestLayout(t *testing.T) {
	b := testBuilder(t)

	l := b.Layout("/", Meta{})
	assert.Equal(t, "BHC Annual Report 2026 | Black Hills Consortium", l.Meta.Title)
	require.Len(t, l.Nav, 8)
	assert.True(t, l.Nav[0].Active)

	active := func(path string) []string {
		var labels []string
		for _, n := range b.Layout(path, Meta{Title: "x"}).Nav {
			if n.Active {
				labels = append(labels, n.Label)
			}
		}
		return labels
	}
	assert.Equal(t, []string{"Entities"}, active("/entity/bhc"))
	assert.Equal(t, []string{"Compare"}, active("/compare/bhb"))
	assert.Equal(t, []string{"Financials"}, active("/financials"))
	assert.Empty(t, active("/print"))

	require.Len(t, l.Footer, 4)
	assert.Equal(t, "Education & Media", l.Footer[3].Title)
	var labels []string
	for _, link := range l.Footer[3].Links {
		labels = append(labels, link.Label)
	}
	assert.Equal(t, []string{"Seed Academy", "Outpost Media"}, labels)
	assert.Equal(t, "/print", l.FooterLinks[2].Href)
}

func TestHome(t *testing.T) {
	h := testBuilder(t).Home()

	assert.Equal(t, 13, h.EntityCount)
	assert.Equal(t, "$71.59M", h.Metrics[0].Text)
	assert.Equal(t, "18,786", h.Metrics[2].Text)
	assert.Equal(t, "Output like 255 with AI", h.Metrics[3].Sublabel)
	assert.Len(t, h.Entities, 13)
	assert.Equal(t, "$60.52M", h.Entities[0].RevenueY1)
	assert.Equal(t, "$60.52M", h.Flywheel[0].Value)
	assert.Equal(t, "$12.41M", h.Flywheel[1].Value)
	assert.Equal(t, "21% Equity Flow", h.Flywheel[1].Label)
	assert.Equal(t, "Elevate Rapid City", h.Competitor)
	assert.Len(t, h.BHCRows, 5)
	assert.Len(t, h.CompetitorRow, 5)
}

func TestEntityPage(t *testing.T) {
	b := testBuilder(t)

	p, err := b.Entity("growwise")
	require.NoError(t, err)
	assert.Equal(t, "FlowBot — BHC Annual Report", p.Meta.Title)
	assert.Equal(t, "Operational", p.StatusLabel)
	assert.Equal(t, "$60.5M", p.Y1.String())
	assert.Equal(t, "$180.0M", p.Y5.String())
	require.Len(t, p.Projection, 5)
	assert.Equal(t, "Year 1", p.Projection[0].Year)
	assert.InDelta(t, 60_520_000, p.Projection[0].Floor, 0.01)
	assert.InDelta(t, 120_260_000, p.Projection[2].Floor, 0.01)
	assert.InDelta(t, 1_250_000_000, p.Projection[4].Ceiling, 0.01)
	assert.Len(t, p.Related, 3)
	assert.Len(t, p.Streams, 3)
	assert.Equal(t, "18,786", p.Metrics[0].Text)
	assert.Equal(t, "721+", p.Metrics[1].Text)

	_, err = b.Entity("nope")
	assert.ErrorIs(t, err, report.ErrNotFound)
}

func TestStreamBars(t *testing.T) {
	e := report.Entity{
		RevenueY1Floor: 1000,
		RevenueStreams: []report.RevenueStream{
			{Name: "big", EstimatedY1: 990},
			{Name: "tiny", EstimatedY1: 10},
		},
	}
	bars := StreamBars(e)
	require.Len(t, bars, 2)
	assert.InDelta(t, 99, bars[0].Width, 1e-9)
	assert.InDelta(t, 5, bars[1].Width, 1e-9)

	e.RevenueStreams = []report.RevenueStream{{Name: "zero", EstimatedY1: 0}, {Name: "none", EstimatedY1: 0}}
	for _, bar := range StreamBars(e) {
		assert.InDelta(t, 5, bar.Width, 1e-9)
	}

	e.RevenueY1Floor = 0
	for _, bar := range StreamBars(e) {
		assert.InDelta(t, 5, bar.Width, 1e-9)
	}
}

func TestProjection(t *testing.T) {
	points := Projection(report.Entity{RevenueY1Floor: 100, RevenueY5Floor: 500, RevenueY1Ceiling: 200, RevenueY5Ceiling: 200})
	want := []float64{100, 200, 300, 400, 500}
	for i, p := range points {
		assert.InDelta(t, want[i], p.Floor, 1e-9)
		assert.InDelta(t, 200, p.Ceiling, 1e-9)
	}
	assert.Equal(t, "Year 5", points[4].Year)
}

func TestFinancials(t *testing.T) {
	p := testBuilder(t).Financials()

	require.Len(t, p.Bars, 13)
	assert.Equal(t, "FlowBot", p.Bars[0].Name)
	assert.Equal(t, "Black Hills…", p.Bars[1].Name)
	assert.Equal(t, "Black Hills Consortium", p.Bars[1].FullName)
	for i := 1; i < len(p.Bars); i++ {
		assert.GreaterOrEqual(t, p.Bars[i-1].Floor, p.Bars[i].Floor)
	}

	require.NotEmpty(t, p.Pie)
	assert.Equal(t, "FlowBot 84.5%", p.Pie[0].Label)
	for i, s := range p.Pie {
		if s.Value <= 5 {
			assert.Empty(t, s.Label, s.Name)
		}
		if i > 0 {
			assert.GreaterOrEqual(t, p.Pie[i-1].Value, s.Value)
		}
	}

	assert.Equal(t, "$358.0M – $1.8B", p.ValuationY1)
	assert.Equal(t, "$71.6M", p.Cards[0].Text, "M values keep one decimal")
	assert.Equal(t, "$439.5M", p.Cards[1].Text)
	assert.Equal(t, "$1.39B", p.Cards[3].Text, "B values keep two decimals")
	require.Len(t, p.Pricing, 5)
	assert.Equal(t, "$1,999", p.Pricing[4].Price)
	assert.Equal(t, "Per month", p.Pricing[1].Description)
	assert.Equal(t, "Per location / month", p.Pricing[2].Description)
	assert.Len(t, p.Recipients, 3)
}

func TestFinancialsFallbackColor(t *testing.T) {
	ds := &report.Dataset{
		Financials: report.Financials{EntityBreakdown: []report.BreakdownEntry{
			{Slug: "ghost", Name: "Ghost", RevenueY1Floor: 1, ShareOfY1Floor: 0},
			{Slug: "ghost2", Name: "Ghost Two", RevenueY1Floor: 2, ShareOfY1Floor: 3},
		}},
	}
	b := New(ds, testSite())
	bars := b.BarChart()
	require.Len(t, bars, 2)
	assert.Equal(t, "#6b7280", bars[0].Color)
	assert.Equal(t, "Ghost Two", bars[0].Name)

	pie := b.PieChart()
	require.Len(t, pie, 1)
	assert.Equal(t, "Ghost Two", pie[0].Name)
}

func TestCompare(t *testing.T) {
	b := testBuilder(t)

	p, err := b.Compare("")
	require.NoError(t, err)
	assert.Equal(t, "elevate", p.Key)
	assert.Equal(t, "ERC", p.ShortName)
	assert.Equal(t, "BHC vs Elevate Rapid City — BHC Annual Report", p.Meta.Title)
	require.Len(t, p.Others, 1)
	assert.Equal(t, NavLink{Href: "/compare/bhb", Label: "BHC vs Black Hills & Badlands"}, p.Others[0])

	require.Len(t, p.Multipliers, 2)
	assert.Equal(t, "17x", p.Multipliers[0].Text)
	assert.Equal(t, "4.3x", p.Multipliers[1].Text)

	assert.Equal(t, "BHC generates more revenue with a leaner, AI-native team.", p.SummaryLead)
	assert.NotEmpty(t, p.SummaryRest)

	assert.Len(t, p.Bars, 6)
	for _, bar := range p.Bars {
		assert.NotEqual(t, "Public Funding", bar.Metric)
		assert.LessOrEqual(t, bar.BHCPercent, 100.0)
		assert.LessOrEqual(t, bar.CompetitorPercent, 100.0)
	}

	bhb, err := b.Compare("bhb")
	require.NoError(t, err)
	assert.Equal(t, "BH&B", bhb.ShortName)
	assert.Equal(t, "/compare", bhb.Others[0].Href)

	_, err = b.Compare("nope")
	assert.ErrorIs(t, err, report.ErrNotFound)
}

func TestCompareBars(t *testing.T) {
	bars := CompareBars([]report.DataPoint{
		{Metric: "a", BHCValue: "$50", CompetitorValue: "$100"},
		{Metric: "b", BHCValue: "0", CompetitorValue: "0"},
		{Metric: "c", BHCValue: "n/a", CompetitorValue: "3"},
	})
	require.Len(t, bars, 2)
	assert.InDelta(t, 50, bars[0].BHCPercent, 1e-9)
	assert.InDelta(t, 100, bars[0].CompetitorPercent, 1e-9)
	assert.Zero(t, bars[1].BHCPercent)
	assert.Zero(t, bars[1].CompetitorPercent)
}

func TestSplitSummary(t *testing.T) {
	lead, rest := SplitSummary("One. Two. Three.")
	assert.Equal(t, "One.", lead)
	assert.Equal(t, "Two. Three.", rest)

	lead, rest = SplitSummary("No break here.")
	assert.Equal(t, "No break here.", lead)
	assert.Empty(t, rest)
}

func TestFlywheelPage(t *testing.T) {
	b := testBuilder(t)

	p := b.Flywheel("bogus")
	assert.Empty(t, p.Diagram.Focus)
	assert.Equal(t, "21%", p.Percentage)
	assert.Equal(t, "$59.1M", p.KeyNumbers[0].Text)
	assert.Equal(t, "21%", p.KeyNumbers[1].Text)
	assert.Equal(t, "$12.41M", p.KeyNumbers[2].Text)
	assert.Equal(t, "13", p.KeyNumbers[3].Text)
	assert.Len(t, p.Roles, 13)
	assert.Len(t, p.Steps, 8)

	focused := b.Flywheel("bhc")
	assert.Equal(t, "bhc", focused.Diagram.Focus)
}

func TestGoals(t *testing.T) {
	p := testBuilder(t).Goals()

	assert.Equal(t, 9, p.Total)
	assert.Equal(t, 7, p.WithProgress)
	assert.Equal(t, 39, p.AverageCompletion)
	for _, g := range p.Goals {
		assert.LessOrEqual(t, g.Percent, 100)
	}
	assert.Equal(t, "$18.4M", p.Goals[0].CurrentText)
	assert.Equal(t, "1,240", p.Goals[2].CurrentText)

	require.Len(t, p.Categories, 3)
	got := map[string]int{}
	for _, c := range p.Categories {
		got[c.Key] = c.Combined
		assert.Equal(t, 3, c.Count)
	}
	assert.Equal(t, map[string]int{"revenue": 20, "infrastructure": 71, "reach": 121}, got)
	assert.Equal(t, "Revenue", p.Categories[0].Label)
}

func TestAverageCompletion(t *testing.T) {
	assert.Equal(t, 0, AverageCompletion(nil))
	assert.Equal(t, 75, AverageCompletion([]report.Goal{
		{Current: 150, Target: 100},
		{Current: 0, Target: 0},
	}))
}

func TestInvestors(t *testing.T) {
	p := testBuilder(t).Investors()
	assert.Equal(t, "$52.0M", p.CapitalRaise)
	require.Len(t, p.Thesis, 5)
	assert.True(t, p.Thesis[4].Wide)
	assert.False(t, p.Thesis[3].Wide)

	even := ThesisGrid([]string{"a", "b"})
	assert.False(t, even[1].Wide)

	funds := FundSlices(make([]report.FundUse, 7))
	assert.Equal(t, "#22c55e", funds[5].Color)
	assert.Equal(t, "#3b82f6", funds[6].Color)
}

func TestTeam(t *testing.T) {
	p := testBuilder(t).Team()
	assert.Equal(t, "Engineering", p.Departments[0].Name)
	assert.Equal(t, 14, p.MaxHeadcount)
	for i := 1; i < len(p.Departments); i++ {
		assert.GreaterOrEqual(t, p.Departments[i-1].Headcount, p.Departments[i].Headcount)
	}
	for _, e := range p.Entities {
		assert.LessOrEqual(t, len(e.Roles), 3)
	}
	assert.Equal(t, "$165K", p.Costs[0].Text)
	assert.Equal(t, "5x", p.AIMultiplier)
	assert.Equal(t, 51, p.EntityHeadcnt)
}

func TestPrint(t *testing.T) {
	p := testBuilder(t).Print()
	assert.Equal(t, "Print Report — BHC Annual Report 2026", p.Meta.Title)
	assert.Equal(t, "growwise", p.Entities[0].Slug)
	assert.Equal(t, "$71.6M", p.TotalY1)
	assert.Equal(t, 51, p.TotalTeam)
	assert.Len(t, p.Top, 5)
	assert.Len(t, p.Connections, 8)

	var crm PrintGoalRow
	for _, g := range p.Goals {
		if g.Label == "CRM Accounts" {
			crm = g
		}
	}
	assert.Equal(t, 125, crm.Progress)
}

func TestNotFound(t *testing.T) {
	nf := testBuilder(t).NotFound("delegate-iq")
	assert.Equal(t, "Delegate Iq", nf.Name)
}

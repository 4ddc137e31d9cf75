package pages

import (
	"sort"
	"strconv"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

const printTopEntities = 5

// PrintEntityRow is an entity line in the printed portfolio table.
type PrintEntityRow struct {
	report.Entity
	Y1 string
	Y5 string
}

// PrintBreakdownRow is one of the top revenue contributors.
type PrintBreakdownRow struct {
	Name string
	Y1   string
	Y5   string
}

// PrintGoalRow is a goal line in the printed report.
type PrintGoalRow struct {
	Label    string
	Current  string
	Target   string
	Progress int
}

// LabeledValue is a formatted figure with its caption.
type LabeledValue struct {
	Label string
	Value string
}

// PrintConnection is a flywheel edge spelled out with entity names.
type PrintConnection struct {
	Number int
	From   string
	To     string
	Label  string
}

// PrintPage is the whole report as a single printable document.
type PrintPage struct {
	Meta        Meta
	Heading     string
	Year        int
	Cover       string
	Overview    []LabeledValue
	Entities    []PrintEntityRow
	TotalY1     string
	TotalY5     string
	TotalTeam   int
	Aggregate   []LabeledValue
	Top         []PrintBreakdownRow
	Team        report.Team
	Costs       []LabeledValue
	Investors   report.Investors
	RaiseText   string
	Funds       []FundSlice
	ValuationY1 string
	ValuationY5 string
	Goals       []PrintGoalRow
	Connections []PrintConnection
	FlywheelPct string
}

// Print builds the single-document printable report.
func (b *Builder) Print() PrintPage {
	ds := b.ds
	m := ds.Metrics
	agg := ds.Financials.Aggregate
	rp := ds.Investors.ReturnProjections

	p := PrintPage{
		Meta: Meta{
			Title:       "Print Report — " + b.site.Title + " " + strconv.Itoa(b.site.Year),
			Description: "Printer-friendly version of the complete " + b.site.Title,
		},
		Heading:     b.site.Organization,
		Year:        b.site.Year,
		Team:        ds.Team,
		Investors:   ds.Investors,
		RaiseText:   format.Currency(ds.Investors.CapitalRaise),
		Funds:       FundSlices(ds.Investors.UseOfFunds),
		ValuationY1: valuationRange(rp.ValuationY1Low, rp.ValuationY1High),
		ValuationY5: valuationRange(rp.ValuationY5Low, rp.ValuationY5High),
		FlywheelPct: format.Fixed(ds.Flywheel.Percentage, 0) + "%",
	}
	p.Cover = format.Number(float64(m.Entities)) + " Entities · " + format.Currency(m.CapitalRaise) + " Capital Raise · " +
		format.Number(float64(m.Staff)) + " Staff"

	p.Overview = []LabeledValue{
		{"Y1 Revenue (Floor)", format.Currency(m.RevenueY1Floor)},
		{"Y1 Revenue (Ceiling)", format.Currency(m.RevenueY1Ceiling)},
		{"Y5 Revenue (Floor)", format.Currency(m.RevenueY5Floor)},
		{"Y5 Revenue (Ceiling)", format.Currency(m.RevenueY5Ceiling)},
		{"Y1 Valuation", valuationRange(m.ValuationY1Low, m.ValuationY1High)},
		{"Y5 Valuation", valuationRange(m.ValuationY5Low, m.ValuationY5High)},
		{"Capital Raise", format.Currency(m.CapitalRaise)},
		{"CRM Accounts", format.Number(float64(m.CRMAccounts))},
		{"Agents Deployed", format.Number(float64(m.AgentsDeployed))},
		{"Sprints Completed", format.Number(float64(m.SprintsCompleted))},
		{"Days Building", format.Number(float64(m.DaysBuilding))},
	}

	sorted := append([]report.Entity(nil), ds.Entities...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RevenueY1Floor > sorted[j].RevenueY1Floor })
	var totalY1, totalY5 float64
	for _, e := range sorted {
		p.Entities = append(p.Entities, PrintEntityRow{Entity: e, Y1: format.Currency(e.RevenueY1Floor), Y5: format.Currency(e.RevenueY5Floor)})
		totalY1 += e.RevenueY1Floor
		totalY5 += e.RevenueY5Floor
		p.TotalTeam += e.TeamSize
	}
	p.TotalY1 = format.Currency(totalY1)
	p.TotalY5 = format.Currency(totalY5)

	p.Aggregate = []LabeledValue{
		{"Y1 Floor", format.Currency(agg.RevenueY1Floor)},
		{"Y1 Ceiling", format.Currency(agg.RevenueY1Ceiling)},
		{"Y5 Floor", format.Currency(agg.RevenueY5Floor)},
		{"Y5 Ceiling", format.Currency(agg.RevenueY5Ceiling)},
	}
	for i, r := range sortedBreakdown(ds.Financials.EntityBreakdown) {
		if i == printTopEntities {
			break
		}
		p.Top = append(p.Top, PrintBreakdownRow{Name: r.Name, Y1: format.Currency(r.RevenueY1Floor), Y5: format.Currency(r.RevenueY5Floor)})
	}

	costs := ds.Team.FullyLoadedCosts
	p.Costs = []LabeledValue{
		{"Technical", format.Currency(costs.Technical)},
		{"Field Sales", format.Currency(costs.FieldSales)},
		{"Executive", format.Currency(costs.Executive)},
	}

	for _, g := range ds.Goals {
		p.Goals = append(p.Goals, PrintGoalRow{
			Label:    g.Label,
			Current:  GoalValue(g.Current, g.Unit),
			Target:   GoalValue(g.Target, g.Unit),
			Progress: rawProgress(g),
		})
	}

	for i, c := range ds.Flywheel.Connections {
		p.Connections = append(p.Connections, PrintConnection{Number: i + 1, From: c.From, To: c.To, Label: c.Label})
	}
	return p
}

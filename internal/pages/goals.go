package pages

import (
	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// GoalCategories are the goal groups in display order.
var GoalCategories = []string{"revenue", "infrastructure", "reach"}

// GoalRow is a goal with its capped completion percentage.
type GoalRow struct {
	report.Goal
	Percent     int
	CurrentText string
	TargetText  string
}

// CategorySummary totals the goals of one category.
type CategorySummary struct {
	Key      string
	Label    string
	Count    int
	Combined int
	Goals    []GoalRow
}

// GoalsPage tracks progress toward the five year goals.
type GoalsPage struct {
	Meta              Meta
	Goals             []GoalRow
	Total             int
	WithProgress      int
	AverageCompletion int
	Categories        []CategorySummary
}

// Goals builds the goals page.
func (b *Builder) Goals() GoalsPage {
	p := GoalsPage{
		Meta:  b.pageMeta("Goals & Milestones", "Track progress toward "+b.site.Title+" five-year goals and milestones"),
		Total: len(b.ds.Goals),
	}
	for _, g := range b.ds.Goals {
		p.Goals = append(p.Goals, goalRow(g))
		if g.Current > 0 {
			p.WithProgress++
		}
	}
	p.AverageCompletion = AverageCompletion(b.ds.Goals)

	for _, cat := range GoalCategories {
		s := CategorySummary{Key: cat, Label: format.TitleFromSlug(cat)}
		var sumCurrent, sumTarget float64
		for _, row := range p.Goals {
			if row.Category != cat {
				continue
			}
			s.Goals = append(s.Goals, row)
			sumCurrent += row.Current
			sumTarget += row.Target
		}
		s.Count = len(s.Goals)
		if sumTarget > 0 {
			s.Combined = int(format.Round(sumCurrent / sumTarget * 100))
		}
		p.Categories = append(p.Categories, s)
	}
	return p
}

func goalRow(g report.Goal) GoalRow {
	return GoalRow{
		Goal:        g,
		Percent:     format.Percentage(g.Current, g.Target),
		CurrentText: GoalValue(g.Current, g.Unit),
		TargetText:  GoalValue(g.Target, g.Unit),
	}
}

// GoalValue formats a goal amount as currency for dollar goals and as a
// grouped number otherwise.
func GoalValue(v float64, unit string) string {
	if unit == "dollars" {
		return format.Currency(v)
	}
	return format.Number(v)
}

// AverageCompletion is the rounded mean of each goal's uncapped completion.
// Goals without a target count as zero.
func AverageCompletion(goals []report.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	var sum float64
	for _, g := range goals {
		if g.Target > 0 {
			sum += g.Current / g.Target * 100
		}
	}
	return int(format.Round(sum / float64(len(goals))))
}

// rawProgress is the uncapped completion used in the print report.
func rawProgress(g report.Goal) int {
	if g.Target == 0 {
		return 0
	}
	return int(format.Round(g.Current / g.Target * 100))
}

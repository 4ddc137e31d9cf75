package pages

import (
	"github.com/blackhillsconsortium/annualreport/internal/flywheel"
	"github.com/blackhillsconsortium/annualreport/internal/format"
)

// EntityRole describes what one entity contributes to the flywheel.
type EntityRole struct {
	Slug      string
	ShortName string
	Color     string
	Role      string
}

// FlywheelPage shows the value flow between entities.
type FlywheelPage struct {
	Meta       Meta
	Percentage string
	Diagram    flywheel.Diagram
	Steps      []flywheel.Step
	Roles      []EntityRole
	KeyNumbers []Counter
	EntityCnt  int
}

// Flywheel builds the flywheel page. focus highlights one node and its
// connections.
func (b *Builder) Flywheel(focus string) FlywheelPage {
	fw := b.ds.Flywheel
	if _, ok := fw.Node(focus); !ok {
		focus = ""
	}
	pct := format.Fixed(fw.Percentage, 0) + "%"

	sourceName := format.TitleFromSlug(fw.Source)
	if src, err := b.ds.Entity(fw.Source); err == nil {
		sourceName = src.Name
	}

	p := FlywheelPage{
		Meta:       b.pageMeta("The "+pct+" Perpetual Flywheel", "How "+pct+" equity distribution creates compounding value across the ecosystem"),
		Percentage: pct,
		Diagram:    flywheel.Build(fw, focus),
		Steps:      flywheel.Steps(fw),
		EntityCnt:  len(b.ds.Entities),
		KeyNumbers: []Counter{
			moneyCounter(format.Display{End: fw.EquityBase / 1_000_000, Prefix: "$", Suffix: "M", Decimals: 1}, sourceName+" Y1 Revenue", ""),
			moneyCounter(format.Display{End: fw.Percentage, Suffix: "%"}, "Equity Flow", ""),
			moneyCounter(format.Display{End: fw.EquityFlow() / 1_000_000, Prefix: "$", Suffix: "M", Decimals: 2}, "Downstream Value", ""),
			numberCounter(float64(len(b.ds.Entities)), "Entities", ""),
		},
	}
	for _, e := range b.ds.Entities {
		p.Roles = append(p.Roles, EntityRole{Slug: e.Slug, ShortName: e.ShortName, Color: e.Color, Role: e.FlywheelRole})
	}
	return p
}

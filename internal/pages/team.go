package pages

import (
	"sort"
	"strconv"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

const teamRoles = 3

// TeamCard is an entity with its first few roles.
type TeamCard struct {
	Slug      string
	Name      string
	ShortName string
	Color     string
	TeamSize  int
	Roles     []string
}

// TeamPage describes consortium staffing.
type TeamPage struct {
	Meta          Meta
	Staff         int
	AIEquivalent  int
	AIMultiplier  string
	Departments   []report.Department
	MaxHeadcount  int
	Entities      []TeamCard
	Benefits      []report.Benefit
	Costs         []Counter
	EntityCount   int
	EntityHeadcnt int
}

// Team builds the team page.
func (b *Builder) Team() TeamPage {
	t := b.ds.Team
	p := TeamPage{
		Meta:         b.pageMeta("Our Team", "Meet the "+strconv.Itoa(t.Staff)+"-person team powering the "+b.site.Organization+" ecosystem"),
		Staff:        t.Staff,
		AIEquivalent: t.AIEquivalent,
		AIMultiplier: format.Number(t.AIMultiplier) + "x",
		Departments:  SortDepartments(t.Departments),
		Benefits:     t.Benefits,
		EntityCount:  len(b.ds.Entities),
		Costs: []Counter{
			costCounter(t.FullyLoadedCosts.Technical, "Technical"),
			costCounter(t.FullyLoadedCosts.FieldSales, "Field Sales"),
			costCounter(t.FullyLoadedCosts.Executive, "Executive"),
		},
	}
	if len(p.Departments) > 0 {
		p.MaxHeadcount = p.Departments[0].Headcount
	}

	for _, e := range b.ds.Entities {
		roles := e.KeyRoles
		if len(roles) > teamRoles {
			roles = roles[:teamRoles]
		}
		p.Entities = append(p.Entities, TeamCard{
			Slug:      e.Slug,
			Name:      e.Name,
			ShortName: e.ShortName,
			Color:     e.Color,
			TeamSize:  e.TeamSize,
			Roles:     roles,
		})
		p.EntityHeadcnt += e.TeamSize
	}
	return p
}

// SortDepartments orders departments by descending headcount.
func SortDepartments(in []report.Department) []report.Department {
	out := append([]report.Department(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Headcount > out[j].Headcount })
	return out
}

func costCounter(dollars float64, label string) Counter {
	d := format.Display{End: dollars / 1000, Prefix: "$", Suffix: "K"}
	return moneyCounter(d, label, "Fully loaded / year")
}

package flywheel

import (
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

const (
	equityOffset  = 60
	defaultOffset = 40

	activeEdgeOpacity = 0.7
	dimEdgeOpacity    = 0.15
	dimNodeOpacity    = 0.35
)

// Node is a flywheel node placed on the diagram.
type Node struct {
	report.FlywheelNode
	Position Point   `json:"position"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Active   bool    `json:"active"`
	Focused  bool    `json:"focused"`
	Opacity  float64 `json:"opacity"`
}

// Edge is a drawn connection between two nodes.
type Edge struct {
	report.FlywheelConnection
	Path    string  `json:"path"`
	Width   float64 `json:"width"`
	Dash    string  `json:"dash"`
	Active  bool    `json:"active"`
	Opacity float64 `json:"opacity"`
}

// Diagram is the full render model of the flywheel.
type Diagram struct {
	Focus string `json:"focus,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build lays out f. When focus names a node, that node and its edges stay
// active and everything else is dimmed. An empty focus keeps everything
// active. Connections to unknown nodes are dropped.
func Build(f report.Flywheel, focus string) Diagram {
	d := Diagram{Focus: focus}
	positions := make(map[string]Point, len(f.Nodes))

	for i, n := range f.Nodes {
		pos := NodePosition(i, len(f.Nodes))
		positions[n.ID] = pos

		active := focus == "" || focus == n.ID
		opacity := 1.0
		if !active {
			opacity = dimNodeOpacity
		}
		d.Nodes = append(d.Nodes, Node{
			FlywheelNode: n,
			Position:     pos,
			Left:         Percent(pos.X),
			Top:          Percent(pos.Y),
			Active:       active,
			Focused:      focus != "" && focus == n.ID,
			Opacity:      opacity,
		})
	}

	for _, c := range f.Connections {
		from, ok := positions[c.From]
		if !ok {
			continue
		}
		to, ok := positions[c.To]
		if !ok {
			continue
		}

		e := Edge{FlywheelConnection: c, Width: 1.8, Dash: "6 4"}
		offset := float64(defaultOffset)
		if c.Type == "equity" {
			offset = equityOffset
			e.Width = 2.5
			e.Dash = "none"
		}
		e.Path = CurvedPath(from, to, offset)
		e.Active = focus == "" || c.From == focus || c.To == focus
		e.Opacity = activeEdgeOpacity
		if !e.Active {
			e.Opacity = dimEdgeOpacity
		}
		d.Edges = append(d.Edges, e)
	}
	return d
}

// Step is one numbered connection in the "how it works" list.
type Step struct {
	Number     int                 `json:"number"`
	From       report.FlywheelNode `json:"from"`
	To         report.FlywheelNode `json:"to"`
	Label      string              `json:"label"`
	Type       string              `json:"type"`
	BadgeClass string              `json:"badgeClass"`
	Last       bool                `json:"last"`
}

// Steps lists the connections in order. Numbers follow the position in the
// connection list, so skipped connections leave a gap.
func Steps(f report.Flywheel) []Step {
	var steps []Step
	for i, c := range f.Connections {
		from, ok := f.Node(c.From)
		if !ok {
			continue
		}
		to, ok := f.Node(c.To)
		if !ok {
			continue
		}
		steps = append(steps, Step{
			Number:     i + 1,
			From:       from,
			To:         to,
			Label:      c.Label,
			Type:       c.Type,
			BadgeClass: BadgeClass(c.Type),
			Last:       i == len(f.Connections)-1,
		})
	}
	return steps
}

// BadgeClass maps a connection type to its badge style.
func BadgeClass(connType string) string {
	switch connType {
	case "equity":
		return "badge-emerald"
	case "funds":
		return "badge-blue"
	case "workers":
		return "badge-cyan"
	case "customers":
		return "badge-orange"
	case "content":
		return "badge-purple"
	default:
		return "badge-gray"
	}
}

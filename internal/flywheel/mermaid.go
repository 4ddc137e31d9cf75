package flywheel

import (
	"fmt"
	"strings"

	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// Mermaid renders the flywheel as a mermaid flowchart. Equity flows are
// thick arrows and everything else is dotted.
func Mermaid(f report.Flywheel) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	known := make(map[string]bool, len(f.Nodes))
	for _, n := range f.Nodes {
		known[n.ID] = true
		id := sanitizeID(n.ID)
		if n.Value != "" {
			b.WriteString(fmt.Sprintf("    %s[\"%s<br/>%s\"]\n", id, escapeMermaid(n.Label), escapeMermaid(n.Value)))
		} else {
			b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeMermaid(n.Label)))
		}
	}

	for _, c := range f.Connections {
		if !known[c.From] || !known[c.To] {
			continue
		}
		arrow := "-.->"
		if c.Type == "equity" {
			arrow = "==>"
		}
		fromID, toID := sanitizeID(c.From), sanitizeID(c.To)
		if c.Label != "" {
			b.WriteString(fmt.Sprintf("    %s %s|%s| %s\n", fromID, arrow, escapeMermaid(c.Label), toID))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", fromID, arrow, toID))
		}
	}

	for _, n := range f.Nodes {
		if n.Color != "" {
			b.WriteString(fmt.Sprintf("    style %s stroke:%s,stroke-width:2px\n", sanitizeID(n.ID), n.Color))
		}
	}

	return b.String()
}

// sanitizeID converts a string into a safe mermaid node ID.
func sanitizeID(s string) string {
	replacer := strings.NewReplacer(
		"-", "_",
		".", "_",
		"/", "_",
		" ", "_",
		"&", "_",
		"(", "_",
		")", "_",
		"[", "_",
		"]", "_",
	)
	return replacer.Replace(s)
}

// escapeMermaid escapes characters that have special meaning in mermaid labels.
func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "|", "#124;")
	s = strings.ReplaceAll(s, "(", "#lpar;")
	s = strings.ReplaceAll(s, ")", "#rpar;")
	s = strings.ReplaceAll(s, "[", "#lsqb;")
	s = strings.ReplaceAll(s, "]", "#rsqb;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/blackhillsconsortium/annualreport/internal/flywheel"
	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

func (s *Server) handleListEntities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "")

	var sb strings.Builder
	n := 0
	for _, e := range s.builder.Dataset().Entities {
		if category != "" && e.Category != category {
			continue
		}
		n++
		fmt.Fprintf(&sb, "- %s (%s): %s, %s, Y1 floor %s, team %d\n",
			e.Name, e.Slug, e.Category, e.Status.Label(),
			format.Currency(e.RevenueY1Floor, format.WithDecimals(2)), e.TeamSize)
	}
	if n == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No entities in category %q.", category)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d entities:\n%s", n, sb.String())), nil
}

func (s *Server) handleGetEntity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slug"), nil
	}
	slug, _ = report.CanonicalSlug(slug)

	p, err := s.builder.Entity(slug)
	if errors.Is(err, report.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("No entity with slug %q. Use list_entities to see valid slugs.", slug)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load entity: %v", err)), nil
	}
	e := p.Entity

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n%s (%s), %s\n\n%s\n\n", e.Name, e.LegalName, e.Type, p.StatusLabel, e.Tagline)
	sb.WriteString(e.Description + "\n\n")
	fmt.Fprintf(&sb, "Revenue: Y1 %s to %s, Y5 %s to %s\n",
		format.Currency(e.RevenueY1Floor, format.WithDecimals(2)), format.Currency(e.RevenueY1Ceiling, format.WithDecimals(2)),
		format.Currency(e.RevenueY5Floor, format.WithDecimals(2)), format.Currency(e.RevenueY5Ceiling, format.WithDecimals(2)))
	fmt.Fprintf(&sb, "Team: %d (%s)\n", e.TeamSize, strings.Join(e.KeyRoles, ", "))

	if len(p.Streams) > 0 {
		sb.WriteString("\n## Revenue streams\n")
		for _, st := range p.Streams {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n", st.Name, st.Amount, st.Status)
		}
	}
	if len(p.Metrics) > 0 {
		sb.WriteString("\n## Metrics\n")
		for _, m := range p.Metrics {
			fmt.Fprintf(&sb, "- %s: %s\n", m.Label, m.Text)
		}
	}
	fmt.Fprintf(&sb, "\n## Flywheel\nRole: %s\nConnection: %s\n", e.FlywheelRole, e.FlywheelConnection)
	if len(p.Related) > 0 {
		sb.WriteString("\nRelated: ")
		for i, r := range p.Related {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.Slug)
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetFinancials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := s.builder.Financials()

	var sb strings.Builder
	sb.WriteString("# Financial overview\n")
	for _, c := range f.Cards {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", c.Label, c.Text, c.Sublabel)
	}
	fmt.Fprintf(&sb, "- Y1 valuation: %s\n- Y5 valuation: %s\n", f.ValuationY1, f.ValuationY5)

	sb.WriteString("\n## Revenue by entity (Y1 floor to ceiling)\n")
	for _, b := range f.Bars {
		fmt.Fprintf(&sb, "- %s: %s to %s\n", b.FullName,
			format.Currency(b.Floor, format.WithDecimals(2)), format.Currency(b.Ceiling, format.WithDecimals(2)))
	}

	fmt.Fprintf(&sb, "\n## %s%% flywheel\n", format.Fixed(f.FlywheelPct, 0))
	for _, r := range f.Recipients {
		fmt.Fprintf(&sb, "- %s: %s%%\n", r.Name, format.Fixed(r.Percent, 0))
	}

	sb.WriteString("\n## FlowBot pricing\n")
	for _, p := range f.Pricing {
		fmt.Fprintf(&sb, "- %s: %s/mo\n", p.Name, p.Price)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetGoalsProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g := s.builder.Goals()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d goals, %d with progress, average completion %d%%\n", g.Total, g.WithProgress, g.AverageCompletion)
	for _, c := range g.Categories {
		fmt.Fprintf(&sb, "\n## %s (%d%% combined)\n", c.Label, c.Combined)
		for _, row := range c.Goals {
			fmt.Fprintf(&sb, "- %s: %s of %s (%d%%)\n", row.Label, row.CurrentText, row.TargetText, row.Percent)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetComparison(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := request.GetString("competitor", report.DefaultComparison)
	p, err := s.builder.Compare(key)
	if errors.Is(err, report.ErrNotFound) {
		keys := s.builder.Dataset().ComparisonKeys()
		return mcp.NewToolResultError(fmt.Sprintf("No comparison %q. Available: %s", key, strings.Join(keys, ", "))), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load comparison: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n%s\n\n", p.Title, p.Data.CompetitorType)
	for _, dp := range p.Data.DataPoints {
		fmt.Fprintf(&sb, "- %s: BHC %s vs %s %s (winner: %s)", dp.Metric, dp.BHCValue, p.ShortName, dp.CompetitorValue, dp.Winner)
		if dp.Note != "" {
			fmt.Fprintf(&sb, ", %s", dp.Note)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\n%s\n", p.Data.Summary)
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetFlywheelDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := s.builder.Dataset().Flywheel

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString(flywheel.Mermaid(f))
	sb.WriteString("```\n\n")
	fmt.Fprintf(&sb, "Equity flow: %s per year (%s%% of %s)\n\n",
		format.Currency(f.EquityFlow(), format.WithDecimals(2)), format.Fixed(f.Percentage, 0),
		format.Currency(f.EquityBase, format.WithDecimals(2)))
	for _, st := range flywheel.Steps(f) {
		fmt.Fprintf(&sb, "%d. %s -> %s [%s]: %s\n", st.Number, st.From.Label, st.To.Label, st.Type, st.Label)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetRemoteSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.snapshots == nil {
		return mcp.NewToolResultError("Remote snapshots are not enabled. Configure remote and run `annualreport sync`."), nil
	}
	kindStr, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: kind"), nil
	}
	kind, err := snapshot.ParseKind(kindStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	subject := ""
	if kind == snapshot.KindEntity {
		subject = request.GetString("slug", "")
		if subject == "" {
			return mcp.NewToolResultError("slug is required when kind is entity"), nil
		}
	}

	snap, err := s.snapshots.Latest(ctx, kind, subject)
	if errors.Is(err, snapshot.ErrNotFound) {
		return mcp.NewToolResultText("No snapshot cached yet. Run `annualreport sync` to fetch one."), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read snapshot: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Fetched %s from %s\n\n%s",
		snap.FetchedAt.Format("2006-01-02 15:04 MST"), snap.SourceURL, string(snap.Payload))), nil
}

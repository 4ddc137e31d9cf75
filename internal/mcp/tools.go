package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listEntitiesTool = mcp.NewTool("list_entities",
	mcp.WithDescription("List the consortium's entities with status, Y1 floor revenue and team size."),
	mcp.WithString("category",
		mcp.Description("Only list entities in this category"),
		mcp.Enum("Technology", "Media", "Education", "Real Estate", "Community"),
	),
)

var getEntityTool = mcp.NewTool("get_entity",
	mcp.WithDescription("Get the full profile of one entity: description, revenue streams, metrics, flywheel role and projection."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Entity slug, e.g. growwise"),
	),
)

var getFinancialsTool = mcp.NewTool("get_financials",
	mcp.WithDescription("Get aggregate revenue and valuation projections and the per-entity breakdown."),
)

var getGoalsProgressTool = mcp.NewTool("get_goals_progress",
	mcp.WithDescription("Get progress toward the five-year goals, overall and per category."),
)

var getComparisonTool = mcp.NewTool("get_comparison",
	mcp.WithDescription("Get a head-to-head comparison between BHC and another regional organization."),
	mcp.WithString("competitor",
		mcp.Description("Comparison key (default elevate)"),
	),
)

var getFlywheelDiagramTool = mcp.NewTool("get_flywheel_diagram",
	mcp.WithDescription("Get the equity flywheel as a Mermaid diagram plus the ordered list of connections."),
)

var getRemoteSnapshotTool = mcp.NewTool("get_remote_snapshot",
	mcp.WithDescription("Get the most recent cached response from the hosted backend."),
	mcp.WithString("kind",
		mcp.Required(),
		mcp.Description("Which snapshot to read"),
		mcp.Enum("entities", "entity", "totals"),
	),
	mcp.WithString("slug",
		mcp.Description("Entity slug, required when kind is entity"),
	),
)

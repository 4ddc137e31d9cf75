package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Snapshots is the read side of the remote snapshot cache.
type Snapshots interface {
	Latest(ctx context.Context, kind snapshot.Kind, subject string) (snapshot.Snapshot, error)
}

// Server wraps an MCP server that exposes the annual report to agents.
type Server struct {
	builder   *pages.Builder
	snapshots Snapshots
	mcp       *server.MCPServer
}

// NewServer creates an MCP server over b. snapshots may be nil.
func NewServer(b *pages.Builder, snapshots Snapshots) *Server {
	s := &Server{
		builder:   b,
		snapshots: snapshots,
	}

	s.mcp = server.NewMCPServer(
		"annualreport",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listEntitiesTool, s.handleListEntities)
	s.mcp.AddTool(getEntityTool, s.handleGetEntity)
	s.mcp.AddTool(getFinancialsTool, s.handleGetFinancials)
	s.mcp.AddTool(getGoalsProgressTool, s.handleGetGoalsProgress)
	s.mcp.AddTool(getComparisonTool, s.handleGetComparison)
	s.mcp.AddTool(getFlywheelDiagramTool, s.handleGetFlywheelDiagram)
	s.mcp.AddTool(getRemoteSnapshotTool, s.handleGetRemoteSnapshot)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

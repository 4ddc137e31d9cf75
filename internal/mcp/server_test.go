package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/blackhillsconsortium/annualreport/internal/db"
	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/report"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

func testServer(t *testing.T, snaps Snapshots) *Server {
	t.Helper()
	ds, err := report.LoadDir("")
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}
	return NewServer(pages.New(ds, pages.Site{Title: "BHC Annual Report", Organization: "Black Hills Consortium", Year: 2026}), snaps)
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{listEntitiesTool, "list_entities"},
		{getEntityTool, "get_entity"},
		{getFinancialsTool, "get_financials"},
		{getGoalsProgressTool, "get_goals_progress"},
		{getComparisonTool, "get_comparison"},
		{getFlywheelDiagramTool, "get_flywheel_diagram"},
		{getRemoteSnapshotTool, "get_remote_snapshot"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := testServer(t, nil)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleListEntities(t *testing.T) {
	srv := testServer(t, nil)

	t.Run("all", func(t *testing.T) {
		text := extractText(call(t, srv.handleListEntities, map[string]any{}))
		if !strings.HasPrefix(text, "13 entities:") {
			t.Errorf("unexpected header: %q", strings.SplitN(text, "\n", 2)[0])
		}
		if !strings.Contains(text, "FlowBot (growwise)") {
			t.Error("missing FlowBot")
		}
	})

	t.Run("category", func(t *testing.T) {
		text := extractText(call(t, srv.handleListEntities, map[string]any{"category": "Real Estate"}))
		if !strings.HasPrefix(text, "3 entities:") {
			t.Errorf("unexpected header: %q", strings.SplitN(text, "\n", 2)[0])
		}
		if strings.Contains(text, "growwise") {
			t.Error("category filter leaked a Technology entity")
		}
	})
}

func TestHandleGetEntity(t *testing.T) {
	srv := testServer(t, nil)

	t.Run("found", func(t *testing.T) {
		result := call(t, srv.handleGetEntity, map[string]any{"slug": "growwise"})
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", extractText(result))
		}
		text := extractText(result)
		for _, want := range []string{"# FlowBot", "Operational", "## Revenue streams", "## Flywheel"} {
			if !strings.Contains(text, want) {
				t.Errorf("missing %q", want)
			}
		}
	})

	t.Run("legacy slug", func(t *testing.T) {
		result := call(t, srv.handleGetEntity, map[string]any{"slug": "delegate-iq"})
		if result.IsError || !strings.Contains(extractText(result), "# Delegate Digital") {
			t.Errorf("legacy slug not resolved: %s", extractText(result))
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if !call(t, srv.handleGetEntity, map[string]any{"slug": "nope"}).IsError {
			t.Error("expected error for unknown slug")
		}
	})

	t.Run("missing slug", func(t *testing.T) {
		if !call(t, srv.handleGetEntity, map[string]any{}).IsError {
			t.Error("expected error for missing slug")
		}
	})
}

func TestHandleGetFinancials(t *testing.T) {
	text := extractText(call(t, testServer(t, nil).handleGetFinancials, map[string]any{}))
	for _, want := range []string{"# Financial overview", "## 21% flywheel", "## FlowBot pricing"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestHandleGetGoalsProgress(t *testing.T) {
	text := extractText(call(t, testServer(t, nil).handleGetGoalsProgress, map[string]any{}))
	if !strings.HasPrefix(text, "9 goals") {
		t.Errorf("unexpected header: %q", strings.SplitN(text, "\n", 2)[0])
	}
}

func TestHandleGetComparison(t *testing.T) {
	srv := testServer(t, nil)

	text := extractText(call(t, srv.handleGetComparison, map[string]any{}))
	if !strings.Contains(text, "Elevate Rapid City") {
		t.Errorf("default comparison missing: %s", text)
	}

	result := call(t, srv.handleGetComparison, map[string]any{"competitor": "nobody"})
	if !result.IsError || !strings.Contains(extractText(result), "elevate, bhb") {
		t.Errorf("unexpected result for unknown comparison: %s", extractText(result))
	}
}

func TestHandleGetFlywheelDiagram(t *testing.T) {
	text := extractText(call(t, testServer(t, nil).handleGetFlywheelDiagram, map[string]any{}))
	if !strings.Contains(text, "```mermaid\ngraph TD") {
		t.Error("missing mermaid block")
	}
	if !strings.Contains(text, "1. ") {
		t.Error("missing numbered steps")
	}
}

func TestHandleGetRemoteSnapshot(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		if !call(t, testServer(t, nil).handleGetRemoteSnapshot, map[string]any{"kind": "totals"}).IsError {
			t.Error("expected error without a snapshot store")
		}
	})

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()
	store := snapshot.NewStore(database)
	srv := testServer(t, store)

	t.Run("empty", func(t *testing.T) {
		text := extractText(call(t, srv.handleGetRemoteSnapshot, map[string]any{"kind": "totals"}))
		if !strings.Contains(text, "No snapshot cached yet") {
			t.Errorf("unexpected: %s", text)
		}
	})

	err = store.Save(context.Background(), &snapshot.Snapshot{
		Kind:      snapshot.KindEntity,
		Subject:   "bhc",
		SourceURL: "https://backend.test",
		Payload:   json.RawMessage(`{"slug":"bhc"}`),
		FetchedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Run("entity", func(t *testing.T) {
		text := extractText(call(t, srv.handleGetRemoteSnapshot, map[string]any{"kind": "entity", "slug": "bhc"}))
		if !strings.Contains(text, `{"slug":"bhc"}`) || !strings.Contains(text, "2026-04-01 09:30 UTC") {
			t.Errorf("unexpected: %s", text)
		}
	})

	t.Run("entity without slug", func(t *testing.T) {
		if !call(t, srv.handleGetRemoteSnapshot, map[string]any{"kind": "entity"}).IsError {
			t.Error("expected error without slug")
		}
	})

	t.Run("bad kind", func(t *testing.T) {
		if !call(t, srv.handleGetRemoteSnapshot, map[string]any{"kind": "users"}).IsError {
			t.Error("expected error for unknown kind")
		}
	})
}

package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/sidebar"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWith(t, sidebar.Options{})
}

func newTestServerWith(t *testing.T, opts sidebar.Options) *Server {
	t.Helper()
	catalog, err := demos.Default()
	if err != nil {
		t.Fatalf("demos.Default: %v", err)
	}
	tree := navtree.MustBuild(navtree.DefaultMenu(), navtree.Options{})
	return NewServer(tree, catalog, opts)
}

// resultText returns the text of the first content block.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_navigation", listNavigationTool, "list_navigation"},
		{"resolve_active", resolveActiveTool, "resolve_active"},
		{"describe_demo", describeDemoTool, "describe_demo"},
		{"simulate_clicks", simulateClicksTool, "simulate_clicks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.tree == nil || srv.catalog == nil {
		t.Error("dependencies not set")
	}
}

func TestHandleListNavigation(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("plain outline", func(t *testing.T) {
		result, err := srv.handleListNavigation(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Dashboard [1] /") {
			t.Errorf("expected Dashboard row, got:\n%s", text)
		}
		if strings.Contains(text, "*") {
			t.Error("no route given, nothing should be marked active")
		}
	})

	t.Run("with route", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"route": "/dashboard/camera"}
		result, err := srv.handleListNavigation(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		for _, want := range []string{"* Three Js [2]", "* Geometries [21]", "* Active Camera [212]"} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in:\n%s", want, text)
			}
		}
	})
}

func TestHandleResolveActive(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("missing route", func(t *testing.T) {
		result, err := srv.handleResolveActive(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result for missing route")
		}
	})

	t.Run("nested leaf", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"route": "/dashboard/camera/"}
		result, err := srv.handleResolveActive(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatal("unexpected error result")
		}
		text := resultText(t, result)
		for _, want := range []string{
			"Breadcrumb: Three Js / Geometries / Active Camera",
			"- [2] Three Js (group)",
			"- [21] Geometries (group)",
			"- [212] Active Camera (leaf)",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in:\n%s", want, text)
			}
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"route": "/nowhere"}
		result, err := srv.handleResolveActive(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "No menu entry") {
			t.Error("expected no-match message")
		}
	})
}

func TestHandleDescribeDemo(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("missing slug", func(t *testing.T) {
		result, err := srv.handleDescribeDemo(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result for missing slug")
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"slug": "teapot"}
		result, err := srv.handleDescribeDemo(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result for unknown slug")
		}
	})

	t.Run("camera markdown", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"slug": "camera"}
		result, err := srv.handleDescribeDemo(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		for _, want := range []string{
			"Route: /dashboard/camera",
			"- camera: OrthographicCamera (",
			"far=10",
			"- Camera Position/positionX (camera.position.x) range -10..10 step 0.1, default 1",
			"## Notes",
			"# Camera",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in:\n%s", want, text)
			}
		}
	})

	t.Run("html notes", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"slug": "camera", "format": "html"}
		result, err := srv.handleDescribeDemo(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), `<h1 id="camera">`) {
			t.Error("expected rendered HTML notes")
		}
	})
}

func TestHandleSimulateClicks(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("missing ids", func(t *testing.T) {
		result, err := srv.handleSimulateClicks(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result for missing ids")
		}
	})

	t.Run("open and navigate", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"ids": []any{float64(221), float64(2), float64(21), float64(212)}}
		result, err := srv.handleSimulateClicks(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		for _, want := range []string{
			"- 221: ignored",
			"- 2: toggled",
			"- 21: toggled",
			"- 212: navigate to /dashboard/camera",
			"Mode: expanded",
			"Route: /dashboard/camera",
			"Expanded: [2 21]",
			"Navigations: 1",
			"* Active Camera [212]",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in:\n%s", want, text)
			}
		}
		if strings.Contains(text, "All Materials") {
			t.Error("closed group children should not be listed")
		}
	})

	t.Run("mobile width closes nothing", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"ids": []any{float64(3)}, "width": float64(600)}
		result, err := srv.handleSimulateClicks(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Mode: mobile-overlay-closed") {
			t.Errorf("expected mobile mode in:\n%s", text)
		}
		if !strings.Contains(text, "Expanded: [3]") {
			t.Errorf("expected group 3 expanded in:\n%s", text)
		}
	})
}

func TestSimulateClicksUsesConfiguredBreakpoint(t *testing.T) {
	srv := newTestServerWith(t, sidebar.Options{Breakpoint: 1100})

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"ids": []any{float64(2)}, "width": float64(1000)}
	result, err := srv.handleSimulateClicks(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text := resultText(t, result); !strings.Contains(text, "Mode: mobile-overlay-closed") {
		t.Errorf("1000px under a 1100px breakpoint should be mobile, got:\n%s", text)
	}
}

func TestFormatParams(t *testing.T) {
	if got := formatParams(nil); got != "" {
		t.Errorf("formatParams(nil) = %q", got)
	}
	got := formatParams(map[string]any{"b": 2, "a": "x"})
	if got != " (a=x, b=2)" {
		t.Errorf("formatParams = %q", got)
	}
}

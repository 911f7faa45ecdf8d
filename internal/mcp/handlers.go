package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/sidebar"
)

// handleListNavigation renders the menu outline, marking the active chain
// when a route is given.
func (s *Server) handleListNavigation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active := navtree.ActiveSet{}
	if route := request.GetString("route", ""); route != "" {
		active = s.tree.ComputeActive(route)
	}
	return mcp.NewToolResultText(s.tree.Outline(active)), nil
}

// handleResolveActive lists every node highlighted for a route.
func (s *Server) handleResolveActive(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	route, err := request.RequireString("route")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: route"), nil
	}

	route = navtree.NormalizeRoute(route)
	active := s.tree.ComputeActive(route)
	if len(active) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No menu entry matches %q.", route)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Active entries for %s\n\n", route)
	for _, n := range s.tree.FindByPath(route) {
		fmt.Fprintf(&b, "Breadcrumb: %s\n", s.tree.Breadcrumb(n.ID))
	}
	b.WriteString("\n")
	for _, id := range active.IDs() {
		n := s.tree.Node(id)
		fmt.Fprintf(&b, "- [%d] %s (%s)\n", n.ID, n.Name, n.Kind)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleDescribeDemo describes one demo page of the catalog.
func (s *Server) handleDescribeDemo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slug"), nil
	}

	page, err := s.catalog.Page(slug)
	if err != nil {
		if errors.Is(err, demos.ErrUnknownPage) {
			return mcp.NewToolResultError(fmt.Sprintf("No demo page named %q. Use list_navigation to see available routes.", slug)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load demo: %v", err)), nil
	}

	return mcp.NewToolResultText(formatDemo(page, request.GetString("format", "markdown"))), nil
}

// handleSimulateClicks replays clicks against a fresh sidebar.
func (s *Server) handleSimulateClicks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := request.RequireIntSlice("ids")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: ids"), nil
	}

	var navigated []string
	nav := sidebar.NavigatorFunc(func(_ navtree.ID, path string) { navigated = append(navigated, path) })
	sb := sidebar.New(s.tree, nav, s.sidebar)
	if width := request.GetInt("width", 0); width > 0 {
		sb.Resize(width)
	}

	var b strings.Builder
	b.WriteString("# Clicks\n\n")
	for _, id := range ids {
		eff := sb.Click(navtree.ID(id))
		switch {
		case eff.Navigate != "":
			fmt.Fprintf(&b, "- %d: navigate to %s\n", id, eff.Navigate)
		case eff.Changed:
			fmt.Fprintf(&b, "- %d: toggled\n", id)
		default:
			fmt.Fprintf(&b, "- %d: ignored\n", id)
		}
	}

	snap := sb.Snapshot()
	expanded := snap.Expanded
	sort.Slice(expanded, func(i, j int) bool { return expanded[i] < expanded[j] })

	fmt.Fprintf(&b, "\nMode: %s\n", snap.Mode)
	fmt.Fprintf(&b, "Route: %s\n", snap.Route)
	fmt.Fprintf(&b, "Expanded: %v\n", expanded)
	fmt.Fprintf(&b, "Navigations: %d\n", len(navigated))
	b.WriteString("\n## Visible rows\n\n")
	for _, row := range snap.Rows {
		marker := " "
		if row.Active {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s%s %s [%d]\n", strings.Repeat("  ", row.Level), marker, row.Label, row.ID)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// formatDemo formats a demo page as markdown.
func formatDemo(p *demos.Page, notesFormat string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "Route: %s\n\n", p.Route)
	if p.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Summary)
	}

	b.WriteString("## Scene\n\n")
	fmt.Fprintf(&b, "- camera: %s%s\n", p.Camera.Kind, formatParams(p.Camera.Params))
	for _, o := range p.Objects {
		fmt.Fprintf(&b, "- %s: %s%s\n", o.Name, o.Kind, formatParams(o.Params))
	}

	b.WriteString("\n## Controls\n\n")
	for _, c := range p.Controls() {
		switch c.Kind {
		case demos.KindRange:
			fmt.Fprintf(&b, "- %s (%s) range %g..%g step %g, default %v\n", c.Key, c.Target, c.Min, c.Max, c.Step, c.Default)
		case demos.KindSelect:
			fmt.Fprintf(&b, "- %s (%s) one of %s, default %v\n", c.Key, c.Target, strings.Join(c.Options, ", "), c.Default)
		default:
			fmt.Fprintf(&b, "- %s (%s) %s, default %v\n", c.Key, c.Target, c.Kind, c.Default)
		}
	}

	switch notesFormat {
	case "html":
		if p.NotesHTML != "" {
			fmt.Fprintf(&b, "\n## Notes\n\n%s\n", p.NotesHTML)
		}
	default:
		if p.NotesMarkdown != "" {
			fmt.Fprintf(&b, "\n## Notes\n\n%s\n", p.NotesMarkdown)
		}
	}

	return b.String()
}

// formatParams renders constructor parameters in a stable order.
func formatParams(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listNavigationTool defines the list_navigation MCP tool.
var listNavigationTool = mcp.NewTool("list_navigation",
	mcp.WithDescription("List the sidebar navigation menu as an indented outline with node ids and paths."),
	mcp.WithString("route",
		mcp.Description("Optional current route; nodes on its active chain are marked with *"),
	),
)

// resolveActiveTool defines the resolve_active MCP tool.
var resolveActiveTool = mcp.NewTool("resolve_active",
	mcp.WithDescription("Resolve which menu entries are highlighted for a route, including every ancestor group."),
	mcp.WithString("route",
		mcp.Required(),
		mcp.Description("Route path such as /dashboard/camera"),
	),
)

// describeDemoTool defines the describe_demo MCP tool.
var describeDemoTool = mcp.NewTool("describe_demo",
	mcp.WithDescription("Describe a demo page: its scene objects, inspector controls and notes."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Demo page slug, e.g. camera"),
	),
	mcp.WithString("format",
		mcp.Description("Notes format (default markdown)"),
		mcp.Enum("markdown", "html"),
	),
)

// simulateClicksTool defines the simulate_clicks MCP tool.
var simulateClicksTool = mcp.NewTool("simulate_clicks",
	mcp.WithDescription("Replay a sequence of sidebar clicks from a fresh sidebar and report expansions, navigations and the visible rows."),
	mcp.WithArray("ids",
		mcp.Required(),
		mcp.Description("Node ids to click, in order"),
		mcp.Items(map[string]any{"type": "integer"}),
	),
	mcp.WithNumber("width",
		mcp.Description("Viewport width in pixels (default desktop)"),
	),
)

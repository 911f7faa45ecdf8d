package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/sidebar"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the navigation menu and demo
// catalog to assistants.
type Server struct {
	tree    *navtree.Tree
	catalog *demos.Catalog
	sidebar sidebar.Options
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. opts
// configures the sidebars that simulate_clicks replays against, and should
// match the dashboard's.
func NewServer(tree *navtree.Tree, catalog *demos.Catalog, opts sidebar.Options) *Server {
	s := &Server{
		tree:    tree,
		catalog: catalog,
		sidebar: opts,
	}

	s.mcp = server.NewMCPServer(
		"scenedash",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listNavigationTool, s.handleListNavigation)
	s.mcp.AddTool(resolveActiveTool, s.handleResolveActive)
	s.mcp.AddTool(describeDemoTool, s.handleDescribeDemo)
	s.mcp.AddTool(simulateClicksTool, s.handleSimulateClicks)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

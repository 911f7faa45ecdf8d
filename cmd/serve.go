package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenedash/scenedash/internal/demos"
	mcpserver "github.com/scenedash/scenedash/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the navigation menu and demo catalog to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tree, err := loadTree(cfg)
		if err != nil {
			return err
		}

		catalog, err := demos.Default()
		if err != nil {
			return fmt.Errorf("loading demo catalog: %w", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "scenedash MCP server started on stdio (menu entries=%d, demos=%d)\n", tree.Len(), len(catalog.Pages()))

		srv := mcpserver.NewServer(tree, catalog, sidebarOptions(cfg))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

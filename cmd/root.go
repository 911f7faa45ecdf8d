package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenedash/scenedash/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scenedash",
	Short: "Three.js learning dashboard with a hierarchical sidebar",
	Long: `scenedash serves a dashboard of Three.js demo pages behind a collapsible,
hierarchical sidebar. The sidebar highlights the chain of menu entries for the
current page, keeps one group open per level and switches to an overlay on
narrow screens. The menu and demo catalog are also exposed to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/scenedash/scenedash/internal/config"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/sidebar"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `scenedash init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		cfg.LogLevel = config.LogDebug
	}
	return cfg, nil
}

// loadTree builds the navigation tree selected by cfg.
func loadTree(cfg *config.Config) (*navtree.Tree, error) {
	tree, err := navtree.Load(cfg.NavigationFile, navtree.Options{SortChildren: cfg.SortChildren})
	if err != nil {
		return nil, fmt.Errorf("loading navigation: %w", err)
	}
	return tree, nil
}

// sidebarOptions maps config onto the options shared by the dashboard's
// sidebars and the MCP simulator.
func sidebarOptions(cfg *config.Config) sidebar.Options {
	return sidebar.Options{
		Breakpoint:       cfg.BreakpointPx,
		AutoExpandActive: cfg.AutoExpandActive,
	}
}

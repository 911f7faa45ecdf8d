package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenedash/scenedash/internal/navtree"
)

var navExportOut string

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Inspect the sidebar navigation menu",
}

var navTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the navigation menu as an outline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := loadTree(cfg)
		if err != nil {
			return err
		}
		fmt.Print(tree.Outline(navtree.ActiveSet{}))
		return nil
	},
}

var navActiveCmd = &cobra.Command{
	Use:   "active <route>",
	Short: "Show which menu entries are highlighted for a route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := loadTree(cfg)
		if err != nil {
			return err
		}

		route := navtree.NormalizeRoute(args[0])
		active := tree.ComputeActive(route)
		if len(active) == 0 {
			fmt.Fprintf(os.Stderr, "No menu entry matches %s\n", route)
			return nil
		}
		for _, n := range tree.FindByPath(route) {
			fmt.Println(tree.Breadcrumb(n.ID))
		}
		fmt.Println()
		fmt.Print(tree.Outline(active))
		return nil
	},
}

var navExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the effective menu as a navigation file",
	Long:  `Writes the menu currently in use (the built-in one unless navigation_file is set) in the YAML format accepted by navigation_file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := loadTree(cfg)
		if err != nil {
			return err
		}

		data, err := navtree.Marshal(tree.Specs())
		if err != nil {
			return fmt.Errorf("encoding navigation: %w", err)
		}

		if navExportOut == "" || navExportOut == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(navExportOut, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", navExportOut, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d menu entries to %s\n", tree.Len(), navExportOut)
		return nil
	},
}

func init() {
	navExportCmd.Flags().StringVarP(&navExportOut, "out", "o", "", "output file (default stdout)")
	navCmd.AddCommand(navTreeCmd, navActiveCmd, navExportCmd)
	rootCmd.AddCommand(navCmd)
}

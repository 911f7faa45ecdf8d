package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenedash/scenedash/internal/config"
)

var initDefaults bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize scenedash configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the dashboard and writes a .scenedash.yml file. Use --defaults to skip the prompts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initDefaults {
			if err := config.DefaultConfig().Save(cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote default configuration to %s\n", cfgFile)
			return nil
		}
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write the default configuration without prompting")
	rootCmd.AddCommand(initCmd)
}

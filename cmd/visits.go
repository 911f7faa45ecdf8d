package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/scenedash/scenedash/internal/db"
	"github.com/scenedash/scenedash/internal/visits"
)

var (
	visitsTopLimit  int
	visitsOlderThan time.Duration
)

var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Report on and prune recorded page visits",
}

var visitsTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the most visited pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openVisitStore()
		if err != nil {
			return err
		}
		defer closeDB()

		top, err := store.Top(context.Background(), visitsTopLimit)
		if err != nil {
			return fmt.Errorf("querying visits: %w", err)
		}
		if len(top) == 0 {
			fmt.Fprintln(os.Stderr, "No visits recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tVISITS")
		for _, pc := range top {
			fmt.Fprintf(w, "%s\t%d\n", pc.Path, pc.Count)
		}
		return w.Flush()
	},
}

var visitsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete visits older than a duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if visitsOlderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}
		store, closeDB, err := openVisitStore()
		if err != nil {
			return err
		}
		defer closeDB()

		n, err := store.DeleteBefore(context.Background(), time.Now().Add(-visitsOlderThan))
		if err != nil {
			return fmt.Errorf("pruning visits: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Deleted %d visits older than %s\n", n, visitsOlderThan)
		return nil
	},
}

// openVisitStore opens the configured database for the visits commands.
func openVisitStore() (*visits.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	database, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return visits.NewStore(database), func() { database.Close() }, nil
}

func init() {
	visitsTopCmd.Flags().IntVar(&visitsTopLimit, "limit", 10, "number of pages to show")
	visitsPruneCmd.Flags().DurationVar(&visitsOlderThan, "older-than", 30*24*time.Hour, "delete visits older than this")
	visitsCmd.AddCommand(visitsTopCmd, visitsPruneCmd)
	rootCmd.AddCommand(visitsCmd)
}

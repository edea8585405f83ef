package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/vacancy-tracker/internal/observability"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch listings from hh.ru and merge them into the collection",
	Long: `Runs one search pass against the hh.ru API using the saved settings,
merges the fetched listings into the stored collection, and prints a
summary. Listings already stored keep their status; only genuinely new
postings are added, marked NEW.`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	coord, st, holder, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	res, ok := coord.RefreshNow(ctx, holder.Get())
	if !ok {
		return fmt.Errorf("a refresh is already running")
	}

	observability.NewPrinter(os.Stdout).PrintRefreshSummary(res)
	if res.SaveErr != nil {
		return fmt.Errorf("failed to persist listings: %w", res.SaveErr)
	}
	return nil
}

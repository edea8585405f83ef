package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrei/vacancy-tracker/internal/listing"
	"github.com/andrei/vacancy-tracker/internal/observability"
	"github.com/andrei/vacancy-tracker/internal/view"
)

var (
	statsDays int
	statsDate string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show load-time charts for the stored listings",
	Long: `Prints text charts of when listings were loaded: one bucket per day over
the last --days days, or one bucket per hour with --hourly.`,
	RunE: runStats,
}

var statsHourly bool

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "Number of days in the daily chart")
	statsCmd.Flags().BoolVar(&statsHourly, "hourly", false, "Show the hourly chart instead of the daily one")
	statsCmd.Flags().StringVar(&statsDate, "date", "", "Restrict the hourly chart to one date (YYYY-MM-DD)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if statsDate != "" {
		if !statsHourly {
			return fmt.Errorf("--date only applies to --hourly")
		}
		if _, err := time.Parse(listing.DateLayout, statsDate); err != nil {
			return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
		}
	}
	if statsDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	coord, st, _, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	p := observability.NewPrinter(os.Stdout)
	collection := coord.Snapshot()
	if statsHourly {
		p.PrintHourlyBuckets(view.HourlyBuckets(collection, statsDate), statsDate)
		return nil
	}
	p.PrintDailyBuckets(view.DailyBuckets(collection, statsDays))
	return nil
}

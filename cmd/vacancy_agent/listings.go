package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/vacancy-tracker/internal/observability"
	"github.com/andrei/vacancy-tracker/internal/view"
)

var listStatus string

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Show the stored listings in display order",
	Long:  `Prints the stored listings, NEW before OLD, most recent first within each group.`,
	RunE:  runListings,
}

func init() {
	listingsCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status: NEW or OLD (default shows all)")
	rootCmd.AddCommand(listingsCmd)
}

func runListings(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	filter, err := view.ParseStatusFilter(listStatus)
	if err != nil {
		return err
	}

	coord, st, _, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	collection := coord.Snapshot()
	if filter != view.FilterAll {
		collection = view.Filter(collection, filter)
	}
	observability.NewPrinter(os.Stdout).PrintListings(collection)
	return nil
}

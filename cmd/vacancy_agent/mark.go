package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var markAll bool

var markCmd = &cobra.Command{
	Use:   "mark-viewed [key...]",
	Short: "Mark listings as viewed (NEW -> OLD)",
	Long: `Transitions the named listings from NEW to OLD. Keys are either
"id:<upstream id>" or the listing link, as shown by the listings command.
Use --all to mark every NEW listing at once. The transition is one-way.`,
	RunE: runMark,
}

func init() {
	markCmd.Flags().BoolVar(&markAll, "all", false, "Mark every NEW listing as viewed")
	rootCmd.AddCommand(markCmd)
}

func runMark(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	if !markAll && len(args) == 0 {
		return fmt.Errorf("provide listing keys or --all")
	}

	coord, st, _, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	var changed int
	if markAll {
		changed, err = coord.MarkAllViewed(ctx)
	} else {
		changed, err = coord.MarkViewed(ctx, args)
	}
	if err != nil {
		return fmt.Errorf("failed to persist status change: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Marked %d listing(s) as viewed\n", changed)
	return nil
}

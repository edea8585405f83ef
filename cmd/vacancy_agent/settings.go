package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/vacancy-tracker/internal/config"
)

var (
	setQuery    string
	setExclude  string
	setDays     int
	setInterval int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update the search settings",
	Long: `Without flags, prints the current search settings as JSON. With flags,
updates the named fields, validates, and persists the result.`,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&setQuery, "query", "", "Search keyword")
	settingsCmd.Flags().StringVar(&setExclude, "exclude", "", "Comma-separated terms to exclude")
	settingsCmd.Flags().IntVar(&setDays, "days", 0, "How many days back to search (1-30)")
	settingsCmd.Flags().IntVar(&setInterval, "interval", 0, "Auto-refresh interval in minutes (1-1440)")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	holder, err := config.NewSettingsHolder(settingsPath())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if cmd.Flags().NFlag() > 0 {
		next := holder.Get()
		if setQuery != "" {
			next.Query = setQuery
		}
		if cmd.Flags().Changed("exclude") {
			next.Exclude = setExclude
		}
		if setDays > 0 {
			next.Days = setDays
		}
		if setInterval > 0 {
			next.RefreshIntervalMinutes = setInterval
		}
		if err := holder.Update(next); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(holder.Get())
}

// Package main provides the entry point for the vacancy tracker CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vacancy_agent",
	Short: "Vacancy tracker for hh.ru job listings",
	Long:  "Vacancy tracker fetches job listings from the hh.ru API, de-duplicates them against the stored collection, and tracks which ones you have already seen.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

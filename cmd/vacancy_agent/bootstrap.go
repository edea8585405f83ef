package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/hh"
	"github.com/andrei/vacancy-tracker/internal/refresh"
	"github.com/andrei/vacancy-tracker/internal/store"
)

const (
	defaultStorePath    = "vacancies.json"
	defaultSettingsPath = "settings.json"
)

var (
	flagStoreDSN     string
	flagSettingsPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStoreDSN, "store", "",
		"Listing store DSN: a file path, postgres://, or redis:// URL (defaults to STORE_DSN env var, then vacancies.json)")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "",
		"Path to the search settings JSON file (defaults to SETTINGS_PATH env var, then settings.json)")
}

func storeDSN() string {
	if flagStoreDSN != "" {
		return flagStoreDSN
	}
	if dsn := os.Getenv("STORE_DSN"); dsn != "" {
		return dsn
	}
	return defaultStorePath
}

func settingsPath() string {
	if flagSettingsPath != "" {
		return flagSettingsPath
	}
	if p := os.Getenv("SETTINGS_PATH"); p != "" {
		return p
	}
	return defaultSettingsPath
}

// openTracker wires the store, upstream client, and coordinator, and
// hydrates the collection. The caller owns the returned store's Close.
func openTracker(ctx context.Context) (*refresh.Coordinator, store.Store, *config.SettingsHolder, error) {
	holder, err := config.NewSettingsHolder(settingsPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	st, err := store.Open(ctx, storeDSN())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open listing store: %w", err)
	}

	coord := refresh.New(hh.NewClient(hh.DefaultOptions()), st)
	if err := coord.Load(ctx); err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return coord, st, holder, nil
}

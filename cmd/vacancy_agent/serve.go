package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/scheduler"
	"github.com/andrei/vacancy-tracker/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the tracker as REST endpoints: listings,
refresh, mark-viewed, chart stats, and settings.

Set ADMIN_PASSWORD_HASH (see the hash-password command) and JWT_SECRET to
require a login for mutating endpoints; leave them unset for local
single-user mode.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	coord, st, holder, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	auth := config.NewAuthConfig()
	cfg := server.Config{Port: servePort, Auth: auth}
	if auth.Enabled() {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return err
		}
		cfg.JWT = jwtCfg
	}

	srv, err := server.New(cfg, coord, holder)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	interval := holder.Get().RefreshIntervalMinutes
	if raw := os.Getenv("REFRESH_INTERVAL_MINUTES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid REFRESH_INTERVAL_MINUTES: %q", raw)
		}
		interval = n
	}
	sched := scheduler.New(coord, holder.Get, interval)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	return srv.Start()
}

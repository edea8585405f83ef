// Package scheduler wires up the cron job that periodically triggers a
// refresh when auto-refresh is enabled in the settings.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/refresh"
)

// Scheduler wraps robfig/cron around the refresh coordinator. It relies
// on the coordinator's single-flight rule: a tick that lands while a
// refresh is already running is simply skipped.
type Scheduler struct {
	cron     *cron.Cron
	coord    *refresh.Coordinator
	settings func() config.Settings
	spec     string
}

// New creates a scheduler firing every intervalMinutes minutes. settings
// is called at each tick so runtime settings changes take effect without
// a restart.
func New(coord *refresh.Coordinator, settings func() config.Settings, intervalMinutes int) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		coord:    coord,
		settings: settings,
		spec:     fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start registers the job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.tick(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	log.Printf("[scheduler] auto-refresh started with spec %s", s.spec)
	return nil
}

// Stop gracefully shuts down the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] auto-refresh stopped")
}

func (s *Scheduler) tick(ctx context.Context) {
	cfg := s.settings()
	if !cfg.AutoRefresh {
		return
	}
	accepted := s.coord.TryRefresh(ctx, cfg, func(res refresh.Result) {
		if res.SaveErr != nil {
			log.Printf("[scheduler] refresh %s completed but save failed: %v", res.RunID, res.SaveErr)
			return
		}
		log.Printf("[scheduler] refresh %s: %d new, %d total", res.RunID, res.NewCount, len(res.Merged))
	})
	if !accepted {
		log.Println("[scheduler] refresh already in flight, skipping tick")
	}
}

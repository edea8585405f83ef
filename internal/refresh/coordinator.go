// Package refresh coordinates fetch-and-merge passes over the
// authoritative listing collection.
//
// At most one refresh runs at a time per coordinator. A refresh request
// made while one is in flight is refused, not queued, which keeps merge
// passes from ever racing. Mark-viewed mutations run synchronously under
// the collection lock.
//
// Persistence failures never dethrone the in-memory collection: it stays
// the source of truth for the rest of the session and the failure is
// carried in the result for the caller to surface.
package refresh

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/hh"
	"github.com/andrei/vacancy-tracker/internal/listing"
	"github.com/andrei/vacancy-tracker/internal/store"
)

// Searcher is the upstream fetch capability the coordinator consumes.
type Searcher interface {
	Search(ctx context.Context, s config.Settings, now time.Time) *hh.Result
}

// Result is the outcome of one refresh pass.
type Result struct {
	RunID    uuid.UUID
	Merged   []listing.Listing
	NewCount int
	Report   hh.Report
	// SaveErr is set when persisting the merged collection failed. The
	// in-memory collection was still updated.
	SaveErr error
}

// Coordinator owns the authoritative collection between persistence
// loads. All access goes through its methods.
type Coordinator struct {
	searcher Searcher
	store    store.Store

	busy atomic.Bool

	mu       sync.Mutex
	listings []listing.Listing
}

// New constructs a coordinator. Call Load before first use to hydrate the
// collection from the store.
func New(searcher Searcher, st store.Store) *Coordinator {
	return &Coordinator{searcher: searcher, store: st}
}

// Load hydrates the in-memory collection from the store. On error the
// collection is left empty and the error is returned for the caller to
// surface; the session can continue from scratch.
func (c *Coordinator) Load(ctx context.Context) error {
	listings, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.listings = listings
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current collection.
func (c *Coordinator) Snapshot() []listing.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]listing.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// TryRefresh starts a background refresh and reports whether it was
// accepted. A refresh already in flight makes this a silent no-op
// returning false. onDone, if non-nil, is invoked from the worker
// goroutine once the pass completes.
func (c *Coordinator) TryRefresh(ctx context.Context, settings config.Settings, onDone func(Result)) bool {
	if !c.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer c.busy.Store(false)
		res := c.refresh(ctx, settings)
		if onDone != nil {
			onDone(res)
		}
	}()
	return true
}

// RefreshNow runs a refresh synchronously. It obeys the same single-flight
// rule; ok is false when another refresh holds the slot.
func (c *Coordinator) RefreshNow(ctx context.Context, settings config.Settings) (Result, bool) {
	if !c.busy.CompareAndSwap(false, true) {
		return Result{}, false
	}
	defer c.busy.Store(false)
	return c.refresh(ctx, settings), true
}

func (c *Coordinator) refresh(ctx context.Context, settings config.Settings) Result {
	runID := uuid.New()
	log.Printf("[refresh] run %s: query=%q days=%d", runID, settings.Query, settings.Days)

	searchRes := c.searcher.Search(ctx, settings, time.Now())

	c.mu.Lock()
	merged, added := listing.Merge(c.listings, searchRes.Listings)
	c.listings = merged
	c.mu.Unlock()

	res := Result{
		RunID:    runID,
		Merged:   merged,
		NewCount: added,
		Report:   searchRes.Report,
	}

	if err := c.store.Save(ctx, merged); err != nil {
		log.Printf("[refresh] run %s: save failed: %v (keeping in-memory collection)", runID, err)
		res.SaveErr = err
	}

	log.Printf("[refresh] run %s: fetched=%d new=%d total=%d partial=%v",
		runID, len(searchRes.Listings), added, len(merged), searchRes.Report.Partial())
	return res
}

// MarkViewed transitions the given keys to OLD and persists the result.
// The changed count reflects actual transitions; a persistence failure is
// returned alongside it while the in-memory collection stays updated.
func (c *Coordinator) MarkViewed(ctx context.Context, keys []string) (int, error) {
	c.mu.Lock()
	updated, changed := listing.MarkViewed(c.listings, keys)
	c.listings = updated
	c.mu.Unlock()

	if changed == 0 {
		return 0, nil
	}
	return changed, c.save(ctx, updated)
}

// MarkAllViewed transitions every NEW listing to OLD and persists.
func (c *Coordinator) MarkAllViewed(ctx context.Context) (int, error) {
	c.mu.Lock()
	updated, changed := listing.MarkAllViewed(c.listings)
	c.listings = updated
	c.mu.Unlock()

	if changed == 0 {
		return 0, nil
	}
	return changed, c.save(ctx, updated)
}

func (c *Coordinator) save(ctx context.Context, listings []listing.Listing) error {
	if err := c.store.Save(ctx, listings); err != nil {
		log.Printf("[refresh] save failed: %v (keeping in-memory collection)", err)
		return err
	}
	return nil
}

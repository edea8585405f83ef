// Package store persists the authoritative listing collection. The
// contract is load everything, replace everything: the merge engine owns
// reconciliation and only needs the previous collection as input and the
// merged collection written back.
//
// Three media are supported, selected by DSN: a JSON file (the original
// single-user mode), PostgreSQL, and Redis.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// Store is the system of record across process restarts.
type Store interface {
	// Load returns every stored listing. A store that has never been
	// written returns an empty collection, not an error.
	Load(ctx context.Context) ([]listing.Listing, error)
	// Save replaces the stored collection with the given one.
	Save(ctx context.Context, listings []listing.Listing) error
	// Close releases any underlying resources.
	Close()
}

// Open selects a store implementation by DSN scheme: postgres:// and
// postgresql:// open PostgreSQL, redis:// and rediss:// open Redis, and
// anything else is treated as a file path.
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == "":
		return nil, fmt.Errorf("store DSN is empty")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(ctx, dsn)
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return OpenRedis(ctx, dsn)
	default:
		return NewFileStore(dsn), nil
	}
}

// CorruptError indicates the stored document exists but cannot be used.
// The caller decides whether to surface it or start from empty.
type CorruptError struct {
	Medium string
	Cause  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt %s listing store: %v", e.Medium, e.Cause)
}

func (e *CorruptError) Unwrap() error { return e.Cause }

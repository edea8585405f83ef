package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrei/vacancy-tracker/internal/listing"
	"github.com/andrei/vacancy-tracker/internal/schemas"
)

// FileStore keeps the collection in a single JSON file, schema-validated
// on load. Writes go through a temp file and rename so a crash mid-save
// never leaves a half-written document.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path. The file is
// created lazily on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and validates the stored collection. A missing file yields an
// empty collection; an unreadable or schema-invalid file yields a
// *CorruptError.
func (s *FileStore) Load(_ context.Context) ([]listing.Listing, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file %s: %w", s.path, err)
	}

	if err := schemas.ValidateListings(data); err != nil {
		return nil, &CorruptError{Medium: "file", Cause: err}
	}

	var listings []listing.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, &CorruptError{Medium: "file", Cause: err}
	}
	return listings, nil
}

// Save writes the collection atomically.
func (s *FileStore) Save(_ context.Context, listings []listing.Listing) error {
	if listings == nil {
		listings = []listing.Listing{}
	}
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal listings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write listings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace listings file: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() {}

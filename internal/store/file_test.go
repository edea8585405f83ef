package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

func TestFileStore_LoadMissingFileYieldsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "vacancies.json"))

	listings, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "vacancies.json"))

	want := []listing.Listing{
		{
			ID:          42,
			Link:        "https://hh.ru/vacancy/42",
			Title:       "Java Backend Developer",
			Company:     "Acme",
			City:        "Moscow",
			Salary:      "100000 - 150000 RUR",
			PublishedAt: "2024-03-01",
			LoadedAt:    "2024-03-01 10:00:00",
			Status:      listing.StatusNew,
		},
		{Link: "https://hh.ru/vacancy/other", Salary: listing.SalaryNotSpecified, Status: listing.StatusOld},
	}

	require.NoError(t, s.Save(context.Background(), want))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_SaveEmptyCollection(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "vacancies.json"))

	require.NoError(t, s.Save(context.Background(), nil))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacancies.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))

	_, err := NewFileStore(path).Load(context.Background())

	var ce *CorruptError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "file", ce.Medium)
}

func TestFileStore_RecordWithBadStatusIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacancies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"link": "x", "status": "MAYBE"}]`), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_MalformedDateSurvivesLoad(t *testing.T) {
	// Bad timestamps are handled at the point of use, not rejected here.
	path := filepath.Join(t.TempDir(), "vacancies.json")
	doc := `[{"link": "x", "status": "NEW", "loaded_at": "garbage"}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	listings, err := NewFileStore(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.True(t, listings[0].RecencyTime().IsZero())
}

func TestOpen_SelectsFileStoreByDefault(t *testing.T) {
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*FileStore)
	assert.True(t, ok)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

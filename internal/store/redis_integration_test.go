package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// Requires a disposable Redis; set TEST_REDIS_URL to run.
func TestRedisStore_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_REDIS_URL")
	if dsn == "" {
		t.Skip("TEST_REDIS_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := OpenRedis(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	want := []listing.Listing{
		{ID: 1, Link: "https://hh.ru/vacancy/1", Status: listing.StatusNew},
		{Link: "https://hh.ru/vacancy/2", Status: listing.StatusOld},
	}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)

	require.NoError(t, s.Save(ctx, nil))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

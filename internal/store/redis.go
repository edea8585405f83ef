package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// redisKey is the hash holding the collection, one field per natural key.
const redisKey = "vacancy-tracker:listings"

// RedisStore keeps the collection in a Redis hash. Field order is not
// preserved, which is fine: ordering is a projector concern.
type RedisStore struct {
	client *redis.Client
}

// OpenRedis parses the URL and verifies connectivity.
func OpenRedis(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Load returns every stored listing. A field that fails to decode is a
// *CorruptError rather than a silent skip, so an operator notices.
func (s *RedisStore) Load(ctx context.Context) ([]listing.Listing, error) {
	fields, err := s.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read listings hash: %w", err)
	}

	listings := make([]listing.Listing, 0, len(fields))
	for key, raw := range fields {
		var l listing.Listing
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, &CorruptError{Medium: "redis", Cause: fmt.Errorf("field %s: %w", key, err)}
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// Save replaces the stored hash in a single pipeline.
func (s *RedisStore) Save(ctx context.Context, listings []listing.Listing) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisKey)
	for _, l := range listings {
		raw, err := json.Marshal(l)
		if err != nil {
			return fmt.Errorf("failed to marshal listing %s: %w", l.Key(), err)
		}
		pipe.HSet(ctx, redisKey, l.Key(), raw)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write listings hash: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	_ = s.client.Close()
}

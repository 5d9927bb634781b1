// Package redis persists cache entries and user preferences in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
	"github.com/ramalMr/cocktail-advisor/internal/observability"
)

// Store implements domain.CacheStore on a Redis hash per entry. Entries hold
// the raw payload (vector bytes or a serialized ranked result) plus the
// creation timestamp, and expire through Redis TTL.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed cache store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves an entry, returning domain.ErrCacheMiss when absent and
// domain.ErrCacheUnavailable on I/O failure.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.HGet(ctx, key, "payload").Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}

	return []byte(payload), nil
}

// Set stores an entry with a time-to-live.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	logger := observability.FromContext(ctx)
	logger.Debug("persisting cache entry",
		observability.String("key", key),
		observability.Int("payload_size", len(value)))

	pipe := s.client.Pipeline()

	pipe.HSet(ctx, key,
		"payload", value,
		"created_at", time.Now().Unix(),
	)

	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}

	return nil
}

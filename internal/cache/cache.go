// Package cache implements the deduplicating get-or-compute cache for
// expensive external calls. Concurrent callers of the same key share a single
// in-flight computation; results are kept in an in-process TTL+LRU layer and
// persisted through a pluggable store that survives restarts.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
	"github.com/ramalMr/cocktail-advisor/internal/observability"
)

// Config tunes cache eviction.
type Config struct {
	TTL        time.Duration `env:"CACHE_TTL"         envDefault:"1h"`
	MaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"4096"`
}

// SingleFlight implements domain.ComputeCache.
type SingleFlight struct {
	store domain.CacheStore
	local *expirable.LRU[string, []byte]
	group singleflight.Group
	ttl   time.Duration
}

// NewSingleFlight creates the cache. The persistent store is optional; a nil
// store keeps entries in memory only.
func NewSingleFlight(store domain.CacheStore, cfg *Config) *SingleFlight {
	return &SingleFlight{
		store: store,
		local: expirable.NewLRU[string, []byte](cfg.MaxEntries, nil, cfg.TTL),
		ttl:   cfg.TTL,
	}
}

// GetOrCompute returns the cached value for key, or runs compute exactly once
// across concurrent callers and stores its result. Store failures degrade to
// direct computation and are logged, never surfaced.
func (c *SingleFlight) GetOrCompute(
	ctx context.Context,
	key string,
	compute func(ctx context.Context) ([]byte, error),
) ([]byte, error) {
	if value, ok := c.local.Get(key); ok {
		return value, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		// A caller may have completed the computation between the local
		// lookup and joining the flight.
		if value, ok := c.local.Get(key); ok {
			return value, nil
		}

		logger := observability.FromContext(ctx)

		if c.store != nil {
			value, getErr := c.store.Get(ctx, key)
			switch {
			case getErr == nil:
				c.local.Add(key, value)
				return value, nil
			case errors.Is(getErr, domain.ErrCacheMiss):
				// Fall through to compute.
			default:
				logger.Warn("cache store unavailable, computing directly",
					observability.String("key", key),
					observability.Error(getErr))
			}
		}

		value, computeErr := compute(ctx)
		if computeErr != nil {
			return nil, computeErr
		}

		// A cancelled computation must not populate an entry.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		c.local.Add(key, value)

		if c.store != nil {
			if setErr := c.store.Set(ctx, key, value, c.ttl); setErr != nil {
				logger.Warn("failed to persist cache entry",
					observability.String("key", key),
					observability.Error(setErr))
			}
		}

		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Invalidate drops an entry from the in-process layer. Persistent entries
// expire through their TTL.
func (c *SingleFlight) Invalidate(key string) {
	c.local.Remove(key)
}

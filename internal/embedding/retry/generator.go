// Package retry wraps an embedding generator with bounded exponential
// backoff. Transient provider failures are retried locally; exhausted retries
// surface as domain.ErrProviderUnavailable.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
	"github.com/ramalMr/cocktail-advisor/internal/observability"
)

// Config tunes the retry policy.
type Config struct {
	MaxAttempts     int           `env:"EMBEDDING_MAX_ATTEMPTS"     envDefault:"4"`
	InitialInterval time.Duration `env:"EMBEDDING_RETRY_INTERVAL"   envDefault:"200ms"`
	MaxInterval     time.Duration `env:"EMBEDDING_RETRY_MAX_INTERVAL" envDefault:"5s"`
}

// Generator decorates a domain.EmbeddingGenerator with retries.
type Generator struct {
	inner domain.EmbeddingGenerator
	cfg   Config
}

// NewGenerator wraps an embedding generator with the retry policy.
func NewGenerator(inner domain.EmbeddingGenerator, cfg Config) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 4
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	return &Generator{inner: inner, cfg: cfg}
}

// Generate retries the wrapped generator with exponential backoff. Validation
// errors and context cancellation are never retried.
func (g *Generator) Generate(ctx context.Context, text string) ([]float64, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.cfg.InitialInterval
	if g.cfg.MaxInterval > 0 {
		policy.MaxInterval = g.cfg.MaxInterval
	}

	logger := observability.FromContext(ctx)
	attempt := 0

	vec, err := backoff.RetryWithData(func() ([]float64, error) {
		attempt++

		result, genErr := g.inner.Generate(ctx, text)
		if genErr == nil {
			return result, nil
		}

		if errors.Is(genErr, domain.ErrValidation) || ctx.Err() != nil {
			return nil, backoff.Permanent(genErr)
		}

		logger.Warn("embedding attempt failed, backing off",
			observability.Int("attempt", attempt),
			observability.Error(genErr))
		return nil, genErr
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(g.cfg.MaxAttempts-1)), ctx))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrProviderUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	return vec, nil
}

// Name returns the wrapped generator identifier.
func (g *Generator) Name() string {
	return g.inner.Name()
}

// Dimension returns the wrapped generator dimension.
func (g *Generator) Dimension() int {
	return g.inner.Dimension()
}

package domain

import (
	"context"
	"time"
)

// EmbeddingGenerator creates vector embeddings from text.
type EmbeddingGenerator interface {
	// Generate creates a vector embedding from text.
	Generate(ctx context.Context, text string) ([]float64, error)

	// Name returns the generator identifier.
	Name() string

	// Dimension returns the vector dimension.
	Dimension() int
}

// ReplyGenerator composes natural-language replies grounded in retrieved
// cocktails. Implementations must only reference supplied candidates.
type ReplyGenerator interface {
	// Reply generates a response to the question using the supplied grounding
	// context and recent conversation history.
	Reply(ctx context.Context, question, groundingContext string, history []ChatMessage) (string, error)

	// Name returns the generator identifier.
	Name() string
}

// SearchPredicate restricts the candidate set before ranking.
type SearchPredicate func(c *Cocktail) bool

// VectorIndex holds per-cocktail embeddings and answers nearest-neighbor
// queries by cosine similarity.
type VectorIndex interface {
	// Build bulk-loads the initial corpus, replacing any existing contents.
	Build(cocktails []*Cocktail) error

	// Insert adds one cocktail without a full rebuild.
	Insert(cocktail *Cocktail) error

	// Search returns up to k candidates ordered by descending similarity.
	// A nil predicate admits every cocktail. An empty result is not an error.
	Search(queryVector []float64, k int, predicate SearchPredicate) []Candidate

	// Len returns the number of indexed cocktails.
	Len() int
}

// ComputeCache deduplicates and persists expensive external computations.
// Concurrent callers with the same key share a single in-flight computation.
type ComputeCache interface {
	// GetOrCompute returns the cached value for key, or runs compute exactly
	// once across concurrent callers and stores its result.
	GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) ([]byte, error)) ([]byte, error)
}

// CacheStore is the persistence layer behind a ComputeCache. Entries survive
// process restarts; failures surface as ErrCacheUnavailable.
type CacheStore interface {
	// Get retrieves an entry, returning ErrCacheMiss when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores an entry with a time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PreferenceStore persists user preferences for the surrounding service.
type PreferenceStore interface {
	// Get returns the stored preference, or an empty normalized preference
	// when the user has none.
	Get(ctx context.Context, userID string) (UserPreference, error)

	// Set replaces the stored preference for a user.
	Set(ctx context.Context, pref UserPreference) error
}

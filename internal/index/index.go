// Package index implements an in-memory nearest-neighbor index over cocktail
// embeddings using brute-force cosine similarity. Reads run concurrently;
// writes are serialized so a reader never observes a partially-inserted vector.
package index

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

// Memory is an in-memory implementation of domain.VectorIndex.
type Memory struct {
	mu        sync.RWMutex
	dimension int
	cocktails []*domain.Cocktail
}

// NewMemory creates an empty index. A zero dimension is fixed by the first
// inserted vector.
func NewMemory(dimension int) *Memory {
	return &Memory{dimension: dimension}
}

// Build bulk-loads the initial corpus, replacing any existing contents.
func (m *Memory) Build(cocktails []*domain.Cocktail) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cocktails = nil
	for _, c := range cocktails {
		if err := m.insertLocked(c); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds one cocktail without a full rebuild.
func (m *Memory) Insert(cocktail *domain.Cocktail) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insertLocked(cocktail)
}

func (m *Memory) insertLocked(cocktail *domain.Cocktail) error {
	if cocktail == nil {
		return fmt.Errorf("cocktail cannot be nil")
	}
	if len(cocktail.Embedding) == 0 {
		return fmt.Errorf("cocktail %q has no embedding", cocktail.Name)
	}

	if m.dimension == 0 {
		m.dimension = len(cocktail.Embedding)
	}
	if len(cocktail.Embedding) != m.dimension {
		return fmt.Errorf("%w: got %d, index dimension is %d",
			domain.ErrDimensionMismatch, len(cocktail.Embedding), m.dimension)
	}

	m.cocktails = append(m.cocktails, cocktail)
	return nil
}

// Search returns up to k candidates ordered by descending cosine similarity,
// ties broken by ascending cocktail name. The predicate restricts the
// candidate set before ranking; an empty result is a valid outcome.
func (m *Memory) Search(queryVector []float64, k int, predicate domain.SearchPredicate) []domain.Candidate {
	if k <= 0 || len(queryVector) == 0 {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := make([]domain.Candidate, 0, len(m.cocktails))
	for _, c := range m.cocktails {
		if predicate != nil && !predicate(c) {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Cocktail: c,
			Score:    CosineSimilarity(queryVector, c.Embedding),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Cocktail.Name < candidates[j].Cocktail.Name
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// Len returns the number of indexed cocktails.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.cocktails)
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

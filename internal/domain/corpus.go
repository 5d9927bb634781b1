package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ramalMr/cocktail-advisor/internal/observability"
)

// CorpusService owns corpus ingestion: it embeds incoming cocktails, populates
// the vector index and maintains lookup indexes over the loaded set. This is
// the only place the engine calls the embedding provider in bulk.
type CorpusService struct {
	embedder EmbeddingGenerator
	index    VectorIndex

	mu           sync.RWMutex
	byID         map[string]*Cocktail
	byIngredient map[string][]*Cocktail
}

// NewCorpusService creates a corpus service (DI constructor).
func NewCorpusService(embedder EmbeddingGenerator, index VectorIndex) *CorpusService {
	return &CorpusService{
		embedder:     embedder,
		index:        index,
		byID:         make(map[string]*Cocktail),
		byIngredient: make(map[string][]*Cocktail),
	}
}

// LoadCorpus embeds cocktails that arrive without embeddings and adds them to
// the vector and ingredient indexes. Cocktails that already carry an embedding
// are indexed as-is.
func (s *CorpusService) LoadCorpus(ctx context.Context, cocktails []*Cocktail) error {
	logger := observability.FromContext(ctx)
	logger.Info("loading cocktail corpus", observability.Int("count", len(cocktails)))

	for _, cocktail := range cocktails {
		if cocktail == nil {
			return errors.New("cocktail cannot be nil")
		}

		if len(cocktail.Embedding) == 0 {
			embedding, err := s.embedder.Generate(ctx, EmbeddingText(cocktail))
			if err != nil {
				return fmt.Errorf("failed to embed cocktail %q: %w", cocktail.Name, err)
			}
			cocktail.Embedding = embedding
		}

		if err := s.index.Insert(cocktail); err != nil {
			return fmt.Errorf("failed to index cocktail %q: %w", cocktail.Name, err)
		}

		s.addToLookups(cocktail)
	}

	logger.Info("corpus loaded", observability.Int("indexed", s.index.Len()))
	return nil
}

// Get returns a loaded cocktail by id.
func (s *CorpusService) Get(id string) (*Cocktail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	return c, ok
}

// FindByIngredients returns cocktails containing every listed ingredient,
// ordered by descending complexity score.
func (s *CorpusService) FindByIngredients(ingredients []string, limit int) []*Cocktail {
	if len(ingredients) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{})
	for _, ing := range normalizeTokens(ingredients) {
		wanted[ing] = struct{}{}
	}

	counts := make(map[string]int)
	for ing := range wanted {
		for _, cocktail := range s.byIngredient[ing] {
			counts[cocktail.ID]++
		}
	}

	var matches []*Cocktail
	for id, n := range counts {
		if n == len(wanted) {
			matches = append(matches, s.byID[id])
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		si, sj := ComplexityScore(matches[i]), ComplexityScore(matches[j])
		if si != sj {
			return si > sj
		}
		return matches[i].Name < matches[j].Name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// IngredientNames returns the corpus ingredient vocabulary, longest names
// first so multi-word ingredients match before their substrings.
func (s *CorpusService) IngredientNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.byIngredient))
	for name := range s.byIngredient {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

func (s *CorpusService) addToLookups(cocktail *Cocktail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[cocktail.ID] = cocktail

	// A recipe can list one ingredient twice (e.g. lime for the rim and the
	// mix); index it once so intersection counts stay exact.
	seen := make(map[string]struct{}, len(cocktail.Ingredients))
	for _, ing := range cocktail.Ingredients {
		name := strings.ToLower(strings.TrimSpace(ing.Name))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		s.byIngredient[name] = append(s.byIngredient[name], cocktail)
	}
}

// EmbeddingText builds the canonical text embedded for a cocktail: name,
// ingredient names and instructions.
func EmbeddingText(c *Cocktail) string {
	names := make([]string, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		names[i] = ing.Name
	}
	return fmt.Sprintf("%s %s %s", c.Name, strings.Join(names, " "), c.Instructions)
}

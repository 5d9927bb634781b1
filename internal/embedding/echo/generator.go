// Package echo provides a deterministic embedding generator that requires no
// external API. It hashes input tokens into a fixed-dimension vector, giving
// stable, repeatable similarity behavior for development and tests.
package echo

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

const defaultDimension = 64

// Generator implements domain.EmbeddingGenerator without external calls.
type Generator struct {
	dimension int
}

// NewGenerator creates an echo embedding generator.
func NewGenerator(dimension int) *Generator {
	if dimension <= 0 {
		dimension = defaultDimension
	}
	return &Generator{dimension: dimension}
}

// Generate hashes each token into vector positions and normalizes the result.
// Texts sharing tokens produce similar vectors, which is enough to exercise
// the ranking pipeline locally.
func (g *Generator) Generate(_ context.Context, text string) ([]float64, error) {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: text cannot be empty", domain.ErrValidation)
	}

	vec := make([]float64, g.dimension)
	for _, token := range tokens {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[int(h.Sum32())%g.dimension]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}

	return vec, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return "echo"
}

// Dimension returns the vector dimension.
func (g *Generator) Dimension() int {
	return g.dimension
}

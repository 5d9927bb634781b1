package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
	"github.com/ramalMr/cocktail-advisor/internal/index"
	"github.com/ramalMr/cocktail-advisor/internal/mocks"
)

func TestCorpusService_LoadCorpus_EmbedsMissingVectors(t *testing.T) {
	ctx := context.Background()
	embedder := mocks.NewMockEmbeddingGenerator(t)
	idx := index.NewMemory(3)
	corpus := domain.NewCorpusService(embedder, idx)

	plain := &domain.Cocktail{
		ID: "1", Name: "Daiquiri",
		Instructions: "Shake with ice.",
		Ingredients:  []domain.Ingredient{{Name: "Rum"}, {Name: "Lime juice"}},
	}
	embedded := &domain.Cocktail{
		ID: "2", Name: "Margarita",
		Instructions: "Shake with ice.",
		Ingredients:  []domain.Ingredient{{Name: "Tequila"}},
		Embedding:    []float64{1, 0, 0},
	}

	embedder.EXPECT().
		Generate(mock.Anything, "Daiquiri Rum Lime juice Shake with ice.").
		Return([]float64{0, 1, 0}, nil).
		Once()

	require.NoError(t, corpus.LoadCorpus(ctx, []*domain.Cocktail{plain, embedded}))

	require.Equal(t, 2, idx.Len())
	require.Equal(t, []float64{0, 1, 0}, plain.Embedding)

	got, ok := corpus.Get("1")
	require.True(t, ok)
	require.Equal(t, "Daiquiri", got.Name)
}

func TestCorpusService_LoadCorpus_EmbeddingFailure(t *testing.T) {
	ctx := context.Background()
	embedder := mocks.NewMockEmbeddingGenerator(t)
	corpus := domain.NewCorpusService(embedder, index.NewMemory(0))

	embedder.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded"))

	err := corpus.LoadCorpus(ctx, []*domain.Cocktail{
		{ID: "1", Name: "Daiquiri", Ingredients: []domain.Ingredient{{Name: "Rum"}}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `failed to embed cocktail "Daiquiri"`)
}

func TestCorpusService_FindByIngredients(t *testing.T) {
	ctx := context.Background()
	corpus := domain.NewCorpusService(mocks.NewMockEmbeddingGenerator(t), index.NewMemory(2))

	cocktails := []*domain.Cocktail{
		{
			ID: "1", Name: "Daiquiri",
			Instructions: "Shake with ice and strain.",
			Ingredients:  []domain.Ingredient{{Name: "Rum"}, {Name: "Lime juice"}, {Name: "Sugar"}},
			Embedding:    []float64{0, 1},
		},
		{
			ID: "2", Name: "Mojito",
			Instructions: "Muddle mint, add rum, shake, stir and top with soda.",
			Ingredients: []domain.Ingredient{
				{Name: "Rum"}, {Name: "Mint"}, {Name: "Lime juice"},
				{Name: "Sugar"}, {Name: "Soda water"},
			},
			Embedding: []float64{1, 0},
		},
		{
			ID: "3", Name: "Margarita",
			Instructions: "Shake with ice.",
			Ingredients:  []domain.Ingredient{{Name: "Tequila"}, {Name: "Lime juice"}},
			Embedding:    []float64{1, 1},
		},
	}
	require.NoError(t, corpus.LoadCorpus(ctx, cocktails))

	t.Run("should require every listed ingredient", func(t *testing.T) {
		matches := corpus.FindByIngredients([]string{"rum", "mint"}, 0)
		require.Len(t, matches, 1)
		require.Equal(t, "Mojito", matches[0].Name)
	})

	t.Run("should order by descending complexity", func(t *testing.T) {
		matches := corpus.FindByIngredients([]string{"rum"}, 0)
		require.Len(t, matches, 2)
		require.Equal(t, "Mojito", matches[0].Name)
		require.Equal(t, "Daiquiri", matches[1].Name)
	})

	t.Run("should honor the limit", func(t *testing.T) {
		matches := corpus.FindByIngredients([]string{"lime juice"}, 1)
		require.Len(t, matches, 1)
	})

	t.Run("should return nothing for unknown ingredients", func(t *testing.T) {
		require.Empty(t, corpus.FindByIngredients([]string{"absinthe"}, 0))
		require.Empty(t, corpus.FindByIngredients(nil, 0))
	})

	t.Run("should dedupe query ingredients", func(t *testing.T) {
		matches := corpus.FindByIngredients([]string{"rum", "Rum", " rum "}, 0)
		require.Len(t, matches, 2)
	})
}

func TestCorpusService_FindByIngredients_RepeatedRecipeIngredient(t *testing.T) {
	ctx := context.Background()
	corpus := domain.NewCorpusService(mocks.NewMockEmbeddingGenerator(t), index.NewMemory(2))

	// Lime juice appears twice in the recipe; the repeat must not stand in
	// for a second distinct ingredient.
	require.NoError(t, corpus.LoadCorpus(ctx, []*domain.Cocktail{
		{
			ID: "1", Name: "Double Lime Sour",
			Instructions: "Shake with ice.",
			Ingredients: []domain.Ingredient{
				{Name: "Rum"}, {Name: "Lime juice"}, {Name: "Lime juice"},
			},
			Embedding: []float64{1, 0},
		},
	}))

	require.Empty(t, corpus.FindByIngredients([]string{"lime juice", "sugar"}, 0))

	matches := corpus.FindByIngredients([]string{"lime juice", "rum"}, 0)
	require.Len(t, matches, 1)
	require.Equal(t, "Double Lime Sour", matches[0].Name)
}

func TestCorpusService_IngredientNames_LongestFirst(t *testing.T) {
	ctx := context.Background()
	corpus := domain.NewCorpusService(mocks.NewMockEmbeddingGenerator(t), index.NewMemory(1))

	require.NoError(t, corpus.LoadCorpus(ctx, []*domain.Cocktail{
		{
			ID: "1", Name: "Daiquiri",
			Ingredients: []domain.Ingredient{{Name: "Rum"}, {Name: "Lime juice"}, {Name: "Sugar"}},
			Embedding:   []float64{1},
		},
	}))

	names := corpus.IngredientNames()
	require.Equal(t, []string{"lime juice", "sugar", "rum"}, names)
}

func TestEmbeddingText(t *testing.T) {
	c := &domain.Cocktail{
		Name:         "Mojito",
		Instructions: "Muddle and stir.",
		Ingredients:  []domain.Ingredient{{Name: "Rum"}, {Name: "Mint"}},
	}

	require.Equal(t, "Mojito Rum Mint Muddle and stir.", domain.EmbeddingText(c))
}

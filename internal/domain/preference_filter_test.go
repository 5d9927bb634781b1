package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

func makeCandidate(name string, score float64, ingredients ...string) domain.Candidate {
	ings := make([]domain.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ings[i] = domain.Ingredient{Name: ing}
	}
	return domain.Candidate{
		Cocktail: &domain.Cocktail{ID: name, Name: name, Ingredients: ings},
		Score:    score,
	}
}

func TestPreferenceFilter_Apply_RemovesAllergens(t *testing.T) {
	filter := domain.NewPreferenceFilter(domain.DefaultBoostWeight)

	candidates := []domain.Candidate{
		makeCandidate("Margarita", 0.92, "Tequila", "Triple sec", "Lime juice"),
		makeCandidate("Daiquiri", 0.88, "Rum", "Lime juice", "Sugar"),
		makeCandidate("Sidecar", 0.85, "Cognac", "Triple sec", "Lemon juice"),
	}
	pref := domain.NewUserPreference("u1", nil, []string{"Triple Sec"})

	out := filter.Apply(candidates, pref)

	require.Len(t, out, 1)
	require.Equal(t, "Daiquiri", out[0].Cocktail.Name)
}

func TestPreferenceFilter_Apply_BoostsFavorites(t *testing.T) {
	filter := domain.NewPreferenceFilter(0.05)

	candidates := []domain.Candidate{
		makeCandidate("Daiquiri", 0.90, "Rum", "Lime juice", "Sugar"),
		makeCandidate("Mojito", 0.90, "Rum", "Mint", "Lime juice", "Sugar", "Soda water"),
	}
	pref := domain.NewUserPreference("u1", []string{"mint"}, nil)

	out := filter.Apply(candidates, pref)

	require.Len(t, out, 2)
	require.Equal(t, "Mojito", out[0].Cocktail.Name)
	require.InDelta(t, 0.95, out[0].Score, 1e-9)
	require.InDelta(t, 0.90, out[1].Score, 1e-9)
}

func TestPreferenceFilter_Apply_BoostScalesWithMatches(t *testing.T) {
	filter := domain.NewPreferenceFilter(0.05)

	candidates := []domain.Candidate{
		makeCandidate("Mojito", 0.80, "Rum", "Mint", "Lime juice"),
	}
	pref := domain.NewUserPreference("u1", []string{"mint", "lime juice", "gin"}, nil)

	out := filter.Apply(candidates, pref)

	require.Len(t, out, 1)
	require.InDelta(t, 0.80+2*0.05, out[0].Score, 1e-9)
}

func TestPreferenceFilter_Apply_StableOnEqualScores(t *testing.T) {
	filter := domain.NewPreferenceFilter(domain.DefaultBoostWeight)

	candidates := []domain.Candidate{
		makeCandidate("Aviation", 0.90, "Gin", "Maraschino"),
		makeCandidate("Bee's Knees", 0.90, "Gin", "Honey", "Lemon juice"),
	}

	out := filter.Apply(candidates, domain.NewUserPreference("u1", nil, nil))

	require.Len(t, out, 2)
	require.Equal(t, "Aviation", out[0].Cocktail.Name)
	require.Equal(t, "Bee's Knees", out[1].Cocktail.Name)
}

func TestPreferenceFilter_Apply_EmptyPreferenceIsIdentity(t *testing.T) {
	filter := domain.NewPreferenceFilter(domain.DefaultBoostWeight)

	candidates := []domain.Candidate{
		makeCandidate("Negroni", 0.93, "Gin", "Campari", "Sweet vermouth"),
		makeCandidate("Martini", 0.91, "Gin", "Dry vermouth"),
	}

	out := filter.Apply(candidates, domain.UserPreference{UserID: "u1"})

	require.Len(t, out, 2)
	require.Equal(t, "Negroni", out[0].Cocktail.Name)
	require.InDelta(t, 0.93, out[0].Score, 1e-9)
	require.Equal(t, "Martini", out[1].Cocktail.Name)
	require.InDelta(t, 0.91, out[1].Score, 1e-9)
}

func TestContainsAllergen(t *testing.T) {
	margarita := &domain.Cocktail{
		Name: "Margarita",
		Ingredients: []domain.Ingredient{
			{Name: "Tequila"}, {Name: "Triple sec"}, {Name: "Lime juice"},
		},
	}

	require.True(t, domain.ContainsAllergen(margarita, []string{"triple sec"}))
	require.True(t, domain.ContainsAllergen(margarita, []string{"mint", "TEQUILA"}))
	require.False(t, domain.ContainsAllergen(margarita, []string{"mint"}))
	require.False(t, domain.ContainsAllergen(margarita, nil))
	// Substring of an ingredient name is not a match.
	require.False(t, domain.ContainsAllergen(margarita, []string{"lime"}))
}

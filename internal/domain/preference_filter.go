package domain

import "sort"

// DefaultBoostWeight nudges near-ties toward favorite ingredients without
// overwhelming strong semantic matches.
const DefaultBoostWeight = 0.05

// PreferenceFilter reorders ranked candidates by user preference: allergy
// exclusion is unconditional, favorite ingredients boost the score.
type PreferenceFilter struct {
	boostWeight float64
}

// NewPreferenceFilter creates a filter with the given boost weight.
// A non-positive weight falls back to the default.
func NewPreferenceFilter(boostWeight float64) *PreferenceFilter {
	if boostWeight <= 0 {
		boostWeight = DefaultBoostWeight
	}
	return &PreferenceFilter{boostWeight: boostWeight}
}

// Apply removes candidates containing any allergen and re-sorts survivors by
// adjusted score. The sort is stable, so equal adjusted scores keep their
// original ranking order.
func (f *PreferenceFilter) Apply(candidates []Candidate, pref UserPreference) []Candidate {
	out := make([]Candidate, 0, len(candidates))

	for _, cand := range candidates {
		if ContainsAllergen(cand.Cocktail, pref.Allergies) {
			continue
		}

		matches := 0
		for _, fav := range pref.FavoriteIngredients {
			if cand.Cocktail.HasIngredient(fav) {
				matches++
			}
		}

		cand.Score += f.boostWeight * float64(matches)
		out = append(out, cand)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// ContainsAllergen reports whether the cocktail contains any of the listed
// allergens, matched case-insensitively on exact ingredient names. It is also
// used as a search predicate so heavy exclusions do not starve the result set.
func ContainsAllergen(c *Cocktail, allergies []string) bool {
	for _, allergen := range allergies {
		if c.HasIngredient(allergen) {
			return true
		}
	}
	return false
}

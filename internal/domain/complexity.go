package domain

import "strings"

const (
	maxIngredientsForScore = 10
	maxInstructionLength   = 500

	ingredientWeight  = 0.4
	instructionWeight = 0.3
	techniqueWeight   = 0.3
)

var techniqueWords = []string{"shake", "stir", "blend", "muddle", "layer", "float"}

// ComplexityScore estimates how involved a cocktail is to prepare, in [0, 1].
// It weighs ingredient count, instruction length and named techniques, and is
// used to order ingredient-query results.
func ComplexityScore(c *Cocktail) float64 {
	ingredientsScore := float64(len(c.Ingredients)) / maxIngredientsForScore
	if ingredientsScore > 1 {
		ingredientsScore = 1
	}

	instructionsScore := float64(len(c.Instructions)) / maxInstructionLength
	if instructionsScore > 1 {
		instructionsScore = 1
	}

	lower := strings.ToLower(c.Instructions)
	techniques := 0
	for _, word := range techniqueWords {
		if strings.Contains(lower, word) {
			techniques++
		}
	}
	techniqueScore := float64(techniques) / float64(len(techniqueWords))

	return ingredientsScore*ingredientWeight +
		instructionsScore*instructionWeight +
		techniqueScore*techniqueWeight
}

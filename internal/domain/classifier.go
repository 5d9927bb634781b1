package domain

import "strings"

// Intent classifies what a user message is asking for.
type Intent string

const (
	// IntentRecommendation asks for cocktail suggestions.
	IntentRecommendation Intent = "recommendation"

	// IntentIngredientQuery asks what can be made from specific ingredients.
	IntentIngredientQuery Intent = "ingredient_query"

	// IntentPreferenceUpdate states likes, dislikes or allergies.
	IntentPreferenceUpdate Intent = "preference_update"

	// IntentGeneral covers open-ended cocktail conversation.
	IntentGeneral Intent = "general"
)

// Keyword lists are tunable; only their qualitative effect on classification
// is contractual.
var (
	recommendationKeywords = []string{
		"recommend", "suggest", "suggestion", "what should i drink",
		"what can i drink", "something", "in the mood for", "give me",
		"show me", "looking for", "i want a", "i'd like a", "surprise me",
	}

	ingredientQueryKeywords = []string{
		"what can i make with", "what cocktails use", "cocktails with",
		"drinks with", "using", "contain", "contains", "made with",
		"have at home", "i have",
	}

	preferenceKeywords = []string{
		"i like", "i love", "i prefer", "my favorite", "my favourite",
		"i'm allergic", "i am allergic", "allergy", "i hate", "i dislike",
		"can't drink", "cannot drink", "remember that i",
	}
)

// Classify decides whether a message is a direct recommendation request,
// an ingredient lookup, a preference statement or open conversation. It is a
// pure function so the heuristic can be tested without any I/O.
func Classify(message string) Intent {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return IntentGeneral
	}

	// Preference statements win over everything: "I like mint, recommend
	// something" should still register the preference phrasing first when it
	// is the dominant clause.
	for _, kw := range preferenceKeywords {
		if strings.Contains(m, kw) {
			// A trailing recommendation request outranks a leading
			// preference mention.
			if containsAny(m, recommendationKeywords) && !strings.HasPrefix(m, kw) {
				break
			}
			return IntentPreferenceUpdate
		}
	}

	if containsAny(m, ingredientQueryKeywords) {
		return IntentIngredientQuery
	}

	if containsAny(m, recommendationKeywords) {
		return IntentRecommendation
	}

	// Bare flavor or ingredient descriptions without question words read as
	// implicit recommendation requests.
	if !strings.Contains(m, "?") && !containsAny(m, questionWords) && len(strings.Fields(m)) <= 6 {
		return IntentRecommendation
	}

	return IntentGeneral
}

var questionWords = []string{"what", "how", "why", "when", "where", "which", "who", "tell me", "explain"}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

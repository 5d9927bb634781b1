package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ramalMr/cocktail-advisor/internal/observability"
)

const (
	maxQueryRunes = 1000

	// Search widens the candidate pool so heavy exclusions still fill k slots.
	searchOverfetchFactor = 2
)

const (
	fallbackReplyMessage = "Here are the cocktails that best match your request. " +
		"I couldn't compose a full write-up right now, so the details are listed below."

	noMatchesMessage = "I couldn't find a cocktail matching your request and preferences. " +
		"Try describing the flavors you're after, or loosen a restriction."

	preferenceAckMessage = "Noted! Update your saved preferences and I'll factor them into " +
		"every recommendation. Want me to suggest something right away?"
)

// AdvisorConfig tunes the recommendation pipeline.
type AdvisorConfig struct {
	Limit         int     `env:"ADVISOR_LIMIT"          envDefault:"5"`
	BoostWeight   float64 `env:"ADVISOR_BOOST_WEIGHT"   envDefault:"0.05"`
	MinSimilarity float64 `env:"ADVISOR_MIN_SIMILARITY" envDefault:"0"`
}

// AdvisorService orchestrates a user message through the recommendation
// pipeline: classify, embed, search, filter and compose a reply. No state
// persists across calls except the session the caller passes in and out.
type AdvisorService struct {
	embedder EmbeddingGenerator
	replier  ReplyGenerator
	index    VectorIndex
	corpus   *CorpusService
	filter   *PreferenceFilter
	cache    ComputeCache
	prefs    PreferenceStore
	cfg      AdvisorConfig
}

// NewAdvisorService creates the advisor (DI constructor). The reply generator
// and cache are optional: a nil replier always uses the templated fallback,
// a nil cache computes directly.
func NewAdvisorService(
	embedder EmbeddingGenerator,
	replier ReplyGenerator,
	index VectorIndex,
	corpus *CorpusService,
	filter *PreferenceFilter,
	cache ComputeCache,
	prefs PreferenceStore,
	cfg *AdvisorConfig,
) *AdvisorService {
	return &AdvisorService{
		embedder: embedder,
		replier:  replier,
		index:    index,
		corpus:   corpus,
		filter:   filter,
		cache:    cache,
		prefs:    prefs,
		cfg:      *cfg,
	}
}

// Recommend processes one user message against a session and preference
// snapshot. The returned session includes the new user and assistant turns.
func (a *AdvisorService) Recommend(
	ctx context.Context,
	session *Session,
	message string,
	pref UserPreference,
) (*RecommendResponse, *Session, error) {
	if err := validateQuery(message); err != nil {
		return nil, session, err
	}

	if session == nil {
		session = NewSession(pref.UserID)
	}
	session.Append("user", message)

	intent := Classify(message)
	ctx = observability.WithIntent(ctx, string(intent))

	logger := observability.FromContext(ctx)
	logger.Info("processing message", observability.Int("message_length", len(message)))

	var (
		resp *RecommendResponse
		err  error
	)

	switch intent {
	case IntentPreferenceUpdate:
		resp = &RecommendResponse{Message: preferenceAckMessage}
	case IntentIngredientQuery:
		resp = a.handleIngredientQuery(ctx, message)
	default:
		resp, err = a.handleSearch(ctx, session, message, pref)
	}
	if err != nil {
		return nil, session, err
	}

	session.Append("assistant", resp.Message)
	session.LastRecommended = cocktailIDs(resp.Cocktails)

	return resp, session, nil
}

// GetPreferences returns the stored preference snapshot for a user.
func (a *AdvisorService) GetPreferences(ctx context.Context, userID string) (UserPreference, error) {
	if userID == "" {
		return UserPreference{}, fmt.Errorf("%w: user id cannot be empty", ErrValidation)
	}
	return a.prefs.Get(ctx, userID)
}

// UpdatePreferences replaces the stored preferences for a user.
func (a *AdvisorService) UpdatePreferences(
	ctx context.Context,
	userID string,
	favorites, allergies []string,
) (UserPreference, error) {
	if userID == "" {
		return UserPreference{}, fmt.Errorf("%w: user id cannot be empty", ErrValidation)
	}

	pref := NewUserPreference(userID, favorites, allergies)
	if err := a.prefs.Set(ctx, pref); err != nil {
		return UserPreference{}, fmt.Errorf("failed to store preferences: %w", err)
	}

	observability.FromContext(ctx).Info("preferences updated",
		observability.Int("favorites", len(pref.FavoriteIngredients)),
		observability.Int("allergies", len(pref.Allergies)))

	return pref, nil
}

// handleSearch runs the embed, search, filter and compose steps for
// recommendation and open conversation intents.
func (a *AdvisorService) handleSearch(
	ctx context.Context,
	session *Session,
	message string,
	pref UserPreference,
) (*RecommendResponse, error) {
	ranked, err := a.rankedCandidates(ctx, message, pref)
	if err != nil {
		return nil, err
	}

	if len(ranked) == 0 {
		return &RecommendResponse{Message: noMatchesMessage}, nil
	}

	cocktails := make([]*Cocktail, len(ranked))
	for i, cand := range ranked {
		cocktails[i] = cand.Cocktail
	}

	return &RecommendResponse{
		Message:   a.composeReply(ctx, session, message, cocktails),
		Cocktails: cocktails,
	}, nil
}

// rankedCandidate is the cached form of a search result.
type rankedCandidate struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// rankedCandidates produces the filtered, boosted candidate list, cached under
// a key derived from the normalized message and the preference snapshot.
func (a *AdvisorService) rankedCandidates(
	ctx context.Context,
	message string,
	pref UserPreference,
) ([]Candidate, error) {
	compute := func(ctx context.Context) ([]byte, error) {
		candidates, searchErr := a.search(ctx, message, pref)
		if searchErr != nil {
			return nil, searchErr
		}

		cached := make([]rankedCandidate, len(candidates))
		for i, cand := range candidates {
			cached[i] = rankedCandidate{ID: cand.Cocktail.ID, Score: cand.Score}
		}
		return json.Marshal(cached)
	}

	var (
		payload []byte
		err     error
	)
	if a.cache != nil {
		key := CacheKey("search", NormalizeText(message)+"|"+preferenceFingerprint(pref))
		payload, err = a.cache.GetOrCompute(ctx, key, compute)
	} else {
		payload, err = compute(ctx)
	}
	if err != nil {
		return nil, err
	}

	var cached []rankedCandidate
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode ranked result: %w", err)
	}

	ranked := make([]Candidate, 0, len(cached))
	for _, rc := range cached {
		if cocktail, ok := a.corpus.Get(rc.ID); ok {
			ranked = append(ranked, Candidate{Cocktail: cocktail, Score: rc.Score})
		}
	}
	return ranked, nil
}

// search embeds the query and runs the index search plus preference filter.
func (a *AdvisorService) search(ctx context.Context, message string, pref UserPreference) ([]Candidate, error) {
	queryVector, err := a.queryEmbedding(ctx, message)
	if err != nil {
		return nil, err
	}

	// Allergy exclusion runs as a search predicate so exclusions do not
	// starve the candidate pool below k.
	predicate := func(c *Cocktail) bool {
		return !ContainsAllergen(c, pref.Allergies)
	}

	candidates := a.index.Search(queryVector, a.cfg.Limit*searchOverfetchFactor, predicate)

	if a.cfg.MinSimilarity > 0 {
		kept := candidates[:0]
		for _, cand := range candidates {
			if cand.Score >= a.cfg.MinSimilarity {
				kept = append(kept, cand)
			}
		}
		candidates = kept
	}

	ranked := a.filter.Apply(candidates, pref)
	if len(ranked) > a.cfg.Limit {
		ranked = ranked[:a.cfg.Limit]
	}

	observability.FromContext(ctx).Info("search completed",
		observability.Int("candidates", len(candidates)),
		observability.Int("ranked", len(ranked)))

	return ranked, nil
}

// queryEmbedding embeds the user query, deduplicated through the cache.
func (a *AdvisorService) queryEmbedding(ctx context.Context, message string) ([]float64, error) {
	normalized := NormalizeText(message)

	compute := func(ctx context.Context) ([]byte, error) {
		vec, genErr := a.embedder.Generate(ctx, normalized)
		if genErr != nil {
			return nil, genErr
		}
		return EncodeVector(vec), nil
	}

	var (
		payload []byte
		err     error
	)
	if a.cache != nil {
		payload, err = a.cache.GetOrCompute(ctx, CacheKey("embedding", normalized), compute)
	} else {
		payload, err = compute(ctx)
	}
	if err != nil {
		// Ranking is impossible without a query vector, so this surfaces
		// to the caller as a user-visible transient failure.
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	return DecodeVector(payload)
}

// composeReply asks the reply generator for a retrieval-augmented response and
// degrades to a fixed message when generation fails or the deadline expires.
func (a *AdvisorService) composeReply(
	ctx context.Context,
	session *Session,
	message string,
	cocktails []*Cocktail,
) string {
	if a.replier == nil {
		return fallbackReplyMessage
	}

	logger := observability.FromContext(ctx)

	reply, err := a.replier.Reply(ctx, message, GroundingContext(cocktails), session.Messages)
	if err != nil {
		logger.Warn("reply generation failed, falling back to ranked list",
			observability.Error(err),
			observability.Bool("deadline_expired", errors.Is(err, context.DeadlineExceeded)))
		return fallbackReplyMessage
	}

	return reply
}

// handleIngredientQuery answers "what can I make with X" from the ingredient
// index with a templated acknowledgment.
func (a *AdvisorService) handleIngredientQuery(ctx context.Context, message string) *RecommendResponse {
	ingredients := a.extractKnownIngredients(message)

	matches := a.corpus.FindByIngredients(ingredients, a.cfg.Limit)
	if len(matches) == 0 {
		return &RecommendResponse{Message: noMatchesMessage}
	}

	observability.FromContext(ctx).Info("ingredient query answered",
		observability.Strings("ingredients", ingredients),
		observability.Int("matches", len(matches)))

	names := make([]string, len(matches))
	for i, c := range matches {
		names[i] = c.Name
	}

	return &RecommendResponse{
		Message: fmt.Sprintf("With %s you could make: %s. Recipes are listed below.",
			strings.Join(ingredients, ", "), strings.Join(names, ", ")),
		Cocktails: matches,
	}
}

// extractKnownIngredients matches message tokens against the loaded corpus
// vocabulary, longest phrases first. Punctuation is stripped so "rum?" still
// matches "rum".
func (a *AdvisorService) extractKnownIngredients(message string) []string {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', '?', '!', ';', ':':
			return ' '
		}
		return r
	}, message)
	m := " " + NormalizeText(stripped) + " "

	var found []string
	for _, ing := range a.corpus.IngredientNames() {
		if strings.Contains(m, " "+ing+" ") {
			found = append(found, ing)
		}
	}
	return found
}

func validateQuery(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return fmt.Errorf("%w: message cannot be empty", ErrValidation)
	}
	if len([]rune(trimmed)) > maxQueryRunes {
		return fmt.Errorf("%w: message exceeds %d characters, please rephrase", ErrValidation, maxQueryRunes)
	}
	return nil
}

func cocktailIDs(cocktails []*Cocktail) []string {
	if len(cocktails) == 0 {
		return nil
	}
	ids := make([]string, len(cocktails))
	for i, c := range cocktails {
		ids[i] = c.ID
	}
	return ids
}

// preferenceFingerprint folds the preference snapshot into the cache key so
// different preferences never share a ranked result. Tokens are sorted so
// reorderings of the same preference hit the same entry.
func preferenceFingerprint(pref UserPreference) string {
	return strings.Join(sortedTokens(pref.FavoriteIngredients), ",") +
		";" + strings.Join(sortedTokens(pref.Allergies), ",")
}

func sortedTokens(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)
	return out
}

// GroundingContext renders retrieved cocktails as the context block injected
// into the generation request.
func GroundingContext(cocktails []*Cocktail) string {
	var b strings.Builder
	for _, c := range cocktails {
		parts := make([]string, len(c.Ingredients))
		for i, ing := range c.Ingredients {
			if ing.Measure != "" {
				parts[i] = fmt.Sprintf("%s %s", ing.Measure, ing.Name)
			} else {
				parts[i] = ing.Name
			}
		}

		fmt.Fprintf(&b, "Cocktail: %s\n", c.Name)
		if c.Category != "" {
			fmt.Fprintf(&b, "Category: %s\n", c.Category)
		}
		if c.GlassType != "" {
			fmt.Fprintf(&b, "Glass: %s\n", c.GlassType)
		}
		fmt.Fprintf(&b, "Ingredients: %s\n", strings.Join(parts, ", "))
		fmt.Fprintf(&b, "Instructions: %s\n\n", c.Instructions)
	}
	return strings.TrimRight(b.String(), "\n")
}

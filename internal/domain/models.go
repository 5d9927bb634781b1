package domain

import (
	"strings"
	"time"
)

// Ingredient is a single cocktail ingredient with an optional measure.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Cocktail is an immutable corpus record. Embedding is populated during
// corpus loading and shares one dimension across the deployment.
type Cocktail struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Alcoholic    bool         `json:"alcoholic"`
	Category     string       `json:"category,omitempty"`
	GlassType    string       `json:"glass_type,omitempty"`
	Instructions string       `json:"instructions"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Embedding    []float64    `json:"-"`
}

// HasIngredient reports whether the cocktail contains the ingredient,
// matched case-insensitively on the exact ingredient name.
func (c *Cocktail) HasIngredient(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ing := range c.Ingredients {
		if strings.ToLower(strings.TrimSpace(ing.Name)) == name {
			return true
		}
	}
	return false
}

// UserPreference is a read-only snapshot of a user's stated preferences.
// Entries are normalized to lowercase trimmed tokens on construction.
type UserPreference struct {
	UserID              string   `json:"user_id"`
	FavoriteIngredients []string `json:"favorite_ingredients"`
	Allergies           []string `json:"allergies"`
}

// NewUserPreference builds a normalized preference snapshot.
func NewUserPreference(userID string, favorites, allergies []string) UserPreference {
	return UserPreference{
		UserID:              userID,
		FavoriteIngredients: normalizeTokens(favorites),
		Allergies:           normalizeTokens(allergies),
	}
}

func normalizeTokens(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ChatMessage is a single conversation turn.
type ChatMessage struct {
	Role      string    `json:"role"` // user, assistant, system
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-user conversation state. The engine appends to it on
// every orchestration call; storage and eviction belong to the caller.
type Session struct {
	UserID          string        `json:"user_id"`
	Messages        []ChatMessage `json:"messages"`
	LastRecommended []string      `json:"last_recommended,omitempty"`
}

const sessionHistoryLimit = 10

// NewSession creates an empty session for a user.
func NewSession(userID string) *Session {
	return &Session{
		UserID:          userID,
		Messages:        nil,
		LastRecommended: nil,
	}
}

// Clone returns a deep copy. Callers that hand sessions to concurrent
// requests must clone so each request mutates its own history.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := &Session{UserID: s.UserID}
	if len(s.Messages) > 0 {
		clone.Messages = make([]ChatMessage, len(s.Messages))
		copy(clone.Messages, s.Messages)
	}
	if len(s.LastRecommended) > 0 {
		clone.LastRecommended = make([]string, len(s.LastRecommended))
		copy(clone.LastRecommended, s.LastRecommended)
	}
	return clone
}

// Append records a turn, keeping only the most recent history.
func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	if len(s.Messages) > sessionHistoryLimit {
		s.Messages = s.Messages[len(s.Messages)-sessionHistoryLimit:]
	}
}

// Candidate is one ranked search result before or after preference filtering.
type Candidate struct {
	Cocktail *Cocktail
	Score    float64
}

// RecommendResponse is the engine's response contract.
type RecommendResponse struct {
	Message   string      `json:"message"`
	Cocktails []*Cocktail `json:"cocktails,omitempty"`
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

const preferenceKeyPrefix = "prefs:"

// PreferenceStore implements domain.PreferenceStore on Redis.
type PreferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a Redis-backed preference store.
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// Get returns the stored preference, or an empty normalized preference when
// the user has none.
func (s *PreferenceStore) Get(ctx context.Context, userID string) (domain.UserPreference, error) {
	data, err := s.client.Get(ctx, preferenceKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return domain.NewUserPreference(userID, nil, nil), nil
	}
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	var pref domain.UserPreference
	if err := json.Unmarshal([]byte(data), &pref); err != nil {
		return domain.UserPreference{}, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return pref, nil
}

// Set replaces the stored preference for a user.
func (s *PreferenceStore) Set(ctx context.Context, pref domain.UserPreference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := s.client.Set(ctx, preferenceKeyPrefix+pref.UserID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}

	return nil
}

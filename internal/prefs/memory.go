// Package prefs provides an in-memory preference store used when no Redis
// address is configured.
package prefs

import (
	"context"
	"sync"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

// Memory implements domain.PreferenceStore in process memory.
type Memory struct {
	mu    sync.RWMutex
	prefs map[string]domain.UserPreference
}

// NewMemory creates an empty in-memory preference store.
func NewMemory() *Memory {
	return &Memory{prefs: make(map[string]domain.UserPreference)}
}

// Get returns the stored preference, or an empty normalized preference when
// the user has none.
func (m *Memory) Get(_ context.Context, userID string) (domain.UserPreference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if pref, ok := m.prefs[userID]; ok {
		return pref, nil
	}
	return domain.NewUserPreference(userID, nil, nil), nil
}

// Set replaces the stored preference for a user.
func (m *Memory) Set(_ context.Context, pref domain.UserPreference) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs[pref.UserID] = pref
	return nil
}

package http

import (
	"sync"
	"time"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

const (
	sessionIdleTimeout = 30 * time.Minute
	maxSessions        = 10000
)

type sessionEntry struct {
	session  *domain.Session
	lastSeen time.Time
}

// SessionStore holds active conversation sessions. The engine treats sessions
// as values passed in and out of each call; storage and eviction live here in
// the surrounding service.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*sessionEntry)}
}

// Get returns a copy of the active session for a user, or nil when none
// exists. Returning a copy keeps concurrent requests for the same user from
// mutating shared history.
func (s *SessionStore) Get(userID string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	if time.Since(entry.lastSeen) > sessionIdleTimeout {
		delete(s.sessions, userID)
		return nil
	}

	entry.lastSeen = time.Now()
	return entry.session.Clone()
}

// Put stores the session returned from an orchestration call.
func (s *SessionStore) Put(userID string, session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= maxSessions {
		s.evictOldestLocked()
	}

	s.sessions[userID] = &sessionEntry{session: session, lastSeen: time.Now()}
}

func (s *SessionStore) evictOldestLocked() {
	var (
		oldestID   string
		oldestSeen time.Time
	)
	for id, entry := range s.sessions {
		if oldestID == "" || entry.lastSeen.Before(oldestSeen) {
			oldestID = id
			oldestSeen = entry.lastSeen
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

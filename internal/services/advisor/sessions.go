package advisor

import (
	"sync"
	"time"

	"github.com/findosh/advisor/internal/models"
	"github.com/google/uuid"
)

// SessionStore keeps active advisory sessions in memory
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
	now      func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*models.Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Put stores or replaces a session
func (s *SessionStore) Put(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get returns a live session. Expired sessions are evicted on access.
func (s *SessionStore) Get(id uuid.UUID) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	if s.now().After(session.ExpiresAt) {
		s.Delete(id)
		return nil, models.ErrSessionExpired
	}
	return session, nil
}

// Delete removes a session
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// DeleteExpired removes every expired session and reports how many went
func (s *SessionStore) DeleteExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

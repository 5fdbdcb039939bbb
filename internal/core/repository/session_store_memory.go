package repository

import (
	"context"
	"fmt"

	"github.com/duynhne/bookstore-service/internal/core/domain"
)

// MemorySessionStore implements domain.SessionStore over an in-process
// map keyed by session ID. Records persist until deleted; whether a
// session is still usable is decided by verifying its access token.
type MemorySessionStore struct {
	sessions map[string]domain.Session
}

// NewSessionStore creates an empty MemorySessionStore.
func NewSessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.Session)}
}

// Create stores a new session record.
func (s *MemorySessionStore) Create(ctx context.Context, sess domain.Session) error {
	if sess.ID == "" || sess.Username == "" {
		return fmt.Errorf("session: missing id or username")
	}
	s.sessions[sess.ID] = sess
	return nil
}

// Get returns the session with the given ID, or (nil, nil) when the
// session does not exist.
func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

// Delete removes the session with the given ID, if present.
func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

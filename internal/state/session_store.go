// Package state holds the client-side state containers. Each store owns one
// record, hands out copies through getters and changes it only through the
// pure mutations defined in the domain package.
package state

import (
	"sync"

	"github.com/bnema/stockdash/internal/domain"
)

type SessionStore struct {
	mu      sync.RWMutex
	session domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Session returns a copy of the current session. A nil store reads as the
// anonymous session.
func (s *SessionStore) Session() domain.Session {
	if s == nil {
		return domain.Session{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *SessionStore) Authenticated() bool {
	return s.Session().Authenticated
}

func (s *SessionStore) MarkAuthenticated(grant domain.SessionGrant) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = s.session.MarkAuthenticated(grant)
	return s.session
}

func (s *SessionStore) MarkUnauthenticated() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = s.session.MarkUnauthenticated()
	return s.session
}

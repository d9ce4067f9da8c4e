package session

import "sync"

// Session is the client's belief about whether the current user is
// authenticated. It starts unauthenticated; there is no persisted session
// across launches.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
}

// NewSession creates an unauthenticated session
func NewSession() *Session {
	return &Session{}
}

// Authenticated reports the current authentication state
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) setAuthenticated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = v
}

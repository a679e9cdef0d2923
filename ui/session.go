package ui

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// SessionStore tracks the selected section per browser session.
// Selection is the only cross-request state the dashboard keeps, it
// lives in memory only, and every session starts at the first
// registry entry. Nothing here is shared between sessions.
type SessionStore struct {
	cookieName string

	mu       sync.RWMutex
	selected map[string]string // session id -> section slug
}

// NewSessionStore creates a store keyed by the given cookie name.
func NewSessionStore(cookieName string) *SessionStore {
	return &SessionStore{
		cookieName: cookieName,
		selected:   make(map[string]string),
	}
}

// SessionID returns the request's session id, minting one and setting
// the cookie when the request carries none.
func (s *SessionStore) SessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Selection returns the slug selected by the session, or "" for a
// fresh session.
func (s *SessionStore) Selection(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[sessionID]
}

// Select records the session's current section.
func (s *SessionStore) Select(sessionID, slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[sessionID] = slug
}

// Package session holds logged-in user state in process memory, keyed by
// an opaque cookie token. No expiry; a session lives until logout clears
// it.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Captcha is a pending arithmetic challenge for a form in this session.
type Captcha struct {
	X int
	Y int
}

func (c Captcha) Answer() int { return c.X + c.Y }

// Session carries a logged-in user's identity plus transient form state.
type Session struct {
	Name   string
	Email  string
	Role   string
	UserID int64

	// PendingEmail bridges register -> verify.
	PendingEmail string

	// PayCaptcha guards the escrow payment form.
	PayCaptcha *Captcha
	// RoomCaptcha guards the post-room form.
	RoomCaptcha *Captcha
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s Session) LoggedIn() bool {
	return s.Email != ""
}

// Store holds sessions keyed by opaque cookie tokens.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create registers a new session and returns its token.
func (s *Store) Create(sess Session) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	return token
}

// Get returns a copy of the session for token.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Put replaces the session stored under an existing token. Unknown tokens
// are ignored; a session must originate from Create.
func (s *Store) Put(token string, sess Session) {
	s.mu.Lock()
	if _, ok := s.sessions[token]; ok {
		s.sessions[token] = sess
	}
	s.mu.Unlock()
}

// Delete clears a session. This is the logout operation.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Package session is the one place the admin bearer token lives. Login and
// logout are the only mutations, and every consumer (the upstream client,
// the admin guard) reads through Token, which treats an expired token as
// already logged out.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Store struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Login(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// Token returns the stored bearer token, or "" when there is none or its
// exp claim has passed. The signature is not verified here; the upstream
// API owns the signing key and will reject a forged token anyway.
func (s *Store) Token() string {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return ""
	}
	if expired(token, s.now()) {
		s.Logout()
		return ""
	}
	return token
}

// LoggedIn reports whether a live token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) tokens carry no expiry we can read.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

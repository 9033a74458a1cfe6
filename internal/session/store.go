package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"zanara/internal/logger"
	"zanara/internal/models"
)

// Store holds the process-wide auth state: one opaque bearer token and the
// current user record. Every outbound API request reads the token from
// here; a central 401 invalidates it exactly once and fires the registered
// hooks (logout/redirect), instead of per-call ad hoc handling.
type Store struct {
	mu          sync.RWMutex
	token       string
	user        *models.AccountUser
	invalidated bool
	hooks       []func()
}

func NewStore() *Store {
	return &Store{}
}

// Begin installs a fresh session after login.
func (s *Store) Begin(token string, user *models.AccountUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.invalidated = false
}

// Token returns the bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current account record, nil when logged out.
func (s *Store) User() *models.AccountUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// OnInvalidated registers a hook to run when the session is torn down by a
// 401 or an explicit Clear. Hooks run at most once per session.
func (s *Store) OnInvalidated(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Clear logs out: drops the token/user and fires the hooks once.
func (s *Store) Clear() {
	s.invalidate("logout")
}

// Invalidate tears the session down in response to an expired/rejected
// token. Safe to call from any number of concurrently failing requests;
// hooks still fire once.
func (s *Store) Invalidate() {
	s.invalidate("token rejected")
}

func (s *Store) invalidate(reason string) {
	s.mu.Lock()
	if s.invalidated || s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.user = nil
	s.invalidated = true
	hooks := append([]func(){}, s.hooks...)
	s.mu.Unlock()

	logger.Info("session invalidated", "reason", reason)
	for _, fn := range hooks {
		fn()
	}
}

// ExpiresAt inspects the token's exp claim without verifying the signature.
// The server stays authoritative; this only lets the UI warn ahead of
// expiry. Zero time when the token is opaque or has no exp claim.
func (s *Store) ExpiresAt() time.Time {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Package session holds the signed-in user. It replaces a process-wide
// store: one Session is created in main and handed to whatever needs it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bustrip/internal/domain"
	"bustrip/internal/eventbus"
	"bustrip/internal/storage"
)

// ErrExpired is returned by Restore when the saved token has expired
var ErrExpired = errors.New("session: saved token has expired")

// Session is the authentication state
type Session struct {
	mu    sync.RWMutex
	user  *domain.User
	token string

	store storage.Store
	bus   eventbus.EventBus
	now   func() time.Time
}

// New creates a signed-out session. store and bus may be nil.
func New(store storage.Store, bus eventbus.EventBus) *Session {
	return &Session{store: store, bus: bus, now: time.Now}
}

// Login signs the user in and persists the session
func (s *Session) Login(ctx context.Context, user domain.User, token string) error {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	if s.store != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
		if err := s.store.SetItem(ctx, storage.KeyUser, string(data)); err != nil {
			return err
		}
		if err := s.store.SetItem(ctx, storage.KeyToken, token); err != nil {
			return err
		}
	}

	s.publish(eventbus.UserLoggedInEvent{User: user})
	return nil
}

// Logout signs out and forgets the persisted session
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	var errs []error
	if s.store != nil {
		errs = append(errs,
			s.store.DeleteItem(ctx, storage.KeyUser),
			s.store.DeleteItem(ctx, storage.KeyToken))
	}

	s.publish(eventbus.UserLoggedOutEvent{})
	return errors.Join(errs...)
}

// Restore loads a persisted session. It returns false without error when
// nothing was saved.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}

	token, err := s.store.GetItem(ctx, storage.KeyToken)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	raw, err := s.store.GetItem(ctx, storage.KeyUser)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if exp, ok := tokenExpiry(token); ok && !exp.After(s.now()) {
		log.Printf("Saved session expired at %s", exp.Format(time.RFC3339))
		_ = s.Logout(ctx)
		return false, ErrExpired
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return false, fmt.Errorf("failed to decode saved user: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	log.Printf("Restored session for %s", user.Email)
	return true, nil
}

// IsAuthenticated reports whether a user is signed in
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// User returns the signed-in user, or nil
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the bearer token, "" when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// tokenExpiry reads the exp claim. The client has no verification key, so
// the token is parsed without checking its signature. Opaque tokens report
// no expiry.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

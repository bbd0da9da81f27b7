// Package session persists the authentication token and user identity across
// client runs, the counterpart of the browser's durable key-value storage.
// The token is read on every request and cleared on 401 or explicit logout.
package session

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/pebble"

	"posadmin/internal/model"
	"posadmin/pkg/jwtutil"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Store is a pebble-backed session store
type Store struct {
	mu sync.Mutex
	db *pebble.DB
}

// Open opens (or creates) the session store under dir
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying store
func (s *Store) Close() error {
	return s.db.Close()
}

// SetToken persists the bearer token
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Set([]byte(tokenKey), []byte(token), pebble.Sync); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Token returns the persisted bearer token, or "" when logged out. It
// satisfies the api.TokenSource interface.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, closer, err := s.db.Get([]byte(tokenKey))
	if err != nil {
		return ""
	}
	defer closer.Close()
	return string(append([]byte(nil), v...))
}

// SetUser persists the authenticated identity record
func (s *Store) SetUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.db.Set([]byte(userKey), b, pebble.Sync); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// User returns the persisted identity record, if any
func (s *Store) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, closer, err := s.db.Get([]byte(userKey))
	if err != nil {
		return model.User{}, false
	}
	defer closer.Close()

	var user model.User
	if err := json.Unmarshal(v, &user); err != nil {
		return model.User{}, false
	}
	return user, true
}

// Clear removes both the token and the identity record. Called on logout and
// on any unauthorized response.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete([]byte(tokenKey), pebble.Sync); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := s.db.Delete([]byte(userKey), pebble.Sync); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return nil
}

// Claims parses the stored token without verifying its signature. Returns an
// error when no token is stored or the token is not a well-formed JWT.
func (s *Store) Claims() (*jwtutil.UserClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, fmt.Errorf("not logged in")
	}
	return jwtutil.ParseUnverified(token)
}

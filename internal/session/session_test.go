package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posadmin/internal/model"
	"posadmin/internal/session"
)

func TestTokenAndUserRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := session.Open(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	user := model.User{ID: "u-1", Name: "Admin", Email: "admin@aipos.com", Role: "admin"}
	require.NoError(t, s.SetUser(user))

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := session.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("persisted"))
	require.NoError(t, s.SetUser(model.User{ID: "u-1", Email: "admin@aipos.com"}))
	require.NoError(t, s.Close())

	s2, err := session.Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	assert.Equal(t, "persisted", s2.Token())
	user, ok := s2.User()
	require.True(t, ok)
	assert.Equal(t, "admin@aipos.com", user.Email)
}

func TestClearRemovesBothKeys(t *testing.T) {
	s, err := session.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetToken("abc"))
	require.NoError(t, s.SetUser(model.User{ID: "u-1"}))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)

	// Clearing an already-empty session is fine
	require.NoError(t, s.Clear())
}

func TestClaimsFromStoredToken(t *testing.T) {
	s, err := session.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Claims()
	require.Error(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@aipos.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-remote-key"))
	require.NoError(t, err)
	require.NoError(t, s.SetToken(token))

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "admin@aipos.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.Expired())
}

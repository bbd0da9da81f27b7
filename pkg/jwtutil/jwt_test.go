package jwtutil_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posadmin/pkg/jwtutil"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return token
}

func TestParseUnverifiedExtractsClaims(t *testing.T) {
	token := signed(t, jwt.MapClaims{
		"email": "admin@aipos.com",
		"name":  "Admin",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := jwtutil.ParseUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@aipos.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.Expired())
}

func TestParseUnverifiedRejectsGarbage(t *testing.T) {
	_, err := jwtutil.ParseUnverified("")
	assert.Error(t, err)

	_, err = jwtutil.ParseUnverified("not-a-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	stale := signed(t, jwt.MapClaims{
		"email": "admin@aipos.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})

	claims, err := jwtutil.ParseUnverified(stale)
	require.NoError(t, err)
	assert.True(t, claims.Expired())

	// A token without exp is left for the server to judge
	open := signed(t, jwt.MapClaims{"email": "admin@aipos.com"})
	claims, err = jwtutil.ParseUnverified(open)
	require.NoError(t, err)
	assert.False(t, claims.Expired())
}

package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims represents the JWT claims issued by the remote auth endpoint
type UserClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseUnverified extracts the claims from a token without checking the
// signature. The client holds no signing key; the server is the authority on
// token validity. Claims are used only for display and local expiry checks.
func ParseUnverified(tokenString string) (*UserClaims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	claims := &UserClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens without
// an exp claim are treated as unexpired and left for the server to reject.
func (c *UserClaims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}

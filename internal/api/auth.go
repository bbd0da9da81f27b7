package api

import (
	"context"
	"fmt"
	"net/http"

	"posadmin/internal/model"
	"posadmin/pkg/validate"
)

// LoginRequest carries the credentials for the login endpoint. Credential
// verification is entirely the server's job.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the token and identity returned on successful login
type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// RegisterRequest carries the fields for the register endpoint
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login authenticates against the remote API and returns the session token
// and identity record for the caller to persist.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "auth", req, &out); err != nil {
		return LoginResponse{}, err
	}
	if out.Token == "" {
		return LoginResponse{}, fmt.Errorf("login response missing token")
	}
	if err := validate.Record(&out.User); err != nil {
		return LoginResponse{}, fmt.Errorf("login user: %w", err)
	}
	return out, nil
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", "auth", req, &out); err != nil {
		return model.User{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.User{}, fmt.Errorf("registered user: %w", err)
	}
	return out, nil
}

// Health checks whether the remote API is reachable and responding
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "health", nil, nil)
}

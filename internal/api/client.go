// Package api is the typed client for the remote POS administration API.
// All business rules (pricing, stock decrement, tax persistence,
// authorization) live behind that API; this package only shapes requests and
// validates responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"posadmin/pkg/logger"
	"posadmin/prometheus"
)

// TokenSource supplies the bearer token attached to every request. An empty
// string means no session; the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the remote POS API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource

	// OnUnauthorized runs once per 401 response, regardless of which resource
	// call triggered it. Wired to session teardown by the caller.
	OnUnauthorized func()

	Metrics *prometheus.ClientMetrics

	log *zap.Logger
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		log:        log,
	}
}

// do issues one request and decodes the JSON response into out (when non-nil).
// resource labels metrics and logs; it is the resource kind, not the full path.
// A logger attached to ctx wins over the client's own.
func (c *Client) do(ctx context.Context, method, path, resource string, body any, out any) error {
	log := logger.FromContext(ctx, c.log)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", resource, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}

	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if c.Metrics != nil {
			c.Metrics.ObserveTransportError(resource)
		}
		log.Warn("request failed before a response was received",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", resource, err)
	}

	latency := time.Since(start)
	if c.Metrics != nil {
		c.Metrics.ObserveRequest(method, resource, resp.StatusCode, latency)
	}
	log.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", latency))

	if resp.StatusCode == http.StatusUnauthorized {
		if c.Metrics != nil {
			c.Metrics.ObserveUnauthorized()
		}
		log.Warn("unauthorized response, tearing down session",
			zap.String("method", method),
			zap.String("path", path))
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(respBody)}
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode %s response: %w", resource, err)
		}
	}

	return nil
}

// errorDetail extracts the human-readable detail field from an error body,
// falling back to the raw body when it is not the expected shape.
func errorDetail(body []byte) string {
	var errResp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return string(body)
}

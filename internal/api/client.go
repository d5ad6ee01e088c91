// Package api provides the HTTP client for the KrapaoShare REST backend.
// Wire types stay inside this package; every method converts responses
// into internal/model values at the boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/krapaoshare/krapao-go/internal/common"
)

// Client talks to the KrapaoShare API over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given base URL. The token, when
// set, is attached to every request as a bearer header.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// serverError is the error body shape the API returns for rejected
// requests.
type serverError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and decodes the response into out (skipped when
// out is nil). Transport failures map to ErrNetworkFailure, 404 to
// ErrNotFound, and every other 4xx/5xx to ErrServerRejected.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	slog.Debug("API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrNetworkFailure, method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, method, path)
	}

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d - %s", common.ErrServerRejected, resp.StatusCode, rejectionMessage(raw))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// rejectionMessage extracts a readable message from an error body,
// falling back to the raw text.
func rejectionMessage(raw []byte) string {
	var se serverError
	if err := json.Unmarshal(raw, &se); err == nil {
		if se.Message != "" {
			return se.Message
		}
		if se.Error != "" {
			return se.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

// internal/adapters/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// Config holds the backend client settings
type Config struct {
	// BaseURL is the backend origin with exactly one /api suffix
	BaseURL    string
	Timeout    time.Duration
	Tokens     ports.TokenSource
	HTTPClient *http.Client
}

// Client is the single egress point for calls to the backend REST API
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	logger  *slog.Logger
}

// New creates a new backend client
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}

		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}

		httpClient = &http.Client{
			Timeout: timeout,
			Jar:     jar,
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		tokens:  cfg.Tokens,
		logger:  logger.With(slog.String("component", "apiclient")),
	}, nil
}

// BaseURL returns the resolved backend API base
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestOption func(*http.Request)

// noStore asks every cache between us and the backend to skip the response
func noStore() requestOption {
	return func(r *http.Request) {
		r.Header.Set("Cache-Control", "no-cache")
		r.Header.Set("Pragma", "no-cache")
	}
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// requiresAuth reports whether path is on the bearer token safelist
func requiresAuth(path string) bool {
	p := strings.TrimPrefix(path, "/")
	return strings.HasPrefix(p, "admin") || strings.HasPrefix(p, "orders")
}

// doJSON sends body encoded as JSON and returns the raw response body
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, opts ...requestOption) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	return c.do(ctx, method, path, query, "application/json", reader, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, opts ...requestOption) ([]byte, error) {
	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	if requiresAuth(path) && c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.DebugContext(ctx, "backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	return data, nil
}

// unwrap decodes body into T. Objects carrying a "data" member (or one of
// keys) are unwrapped first; bare objects and arrays decode as they are.
func unwrap[T any](body []byte, keys ...string) (T, error) {
	var out T

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return out, nil
	}

	if trimmed[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err == nil {
			for _, k := range append([]string{"data"}, keys...) {
				if raw, ok := env[k]; ok && !isNull(raw) {
					trimmed = raw
					break
				}
			}
		}
	}

	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}

	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func pathID(id string) string {
	return url.PathEscape(id)
}

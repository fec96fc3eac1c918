// Package client provides a typed HTTP client for the PokeAPI REST service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/raphaelgruber/pokedex/internal/metrics"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultTimeout bounds a single HTTP call, including reading the body.
	DefaultTimeout = 15 * time.Second

	// maxErrorBodyLen caps how much of an error body ends up in RemoteError.
	maxErrorBodyLen = 200
)

// Client performs GET requests against PokeAPI and decodes the JSON records.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *metrics.Collector
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is still
// wrapped with request logging.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-call timeout. Zero keeps DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics records per-endpoint request timing into collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// New creates a PokeAPI client rooted at baseURL.
// If baseURL is empty, uses DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// Copy so a caller-supplied client is not mutated.
	hc := http.Client{}
	if c.httpClient != nil {
		hc = *c.httpClient
	}
	hc.Timeout = c.timeout
	hc.Transport = newLoggingTransport(hc.Transport, c.logger)
	c.httpClient = &hc

	return c, nil
}

// BaseURL returns the root all resource paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// get fetches baseURL/elems?query and decodes the JSON body into out.
// op names the endpoint for metrics and error context.
func (c *Client) get(ctx context.Context, op string, query url.Values, out any, elems ...string) (err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.RecordRequest(op, time.Since(start), err != nil)
		}
	}()

	u := c.baseURL.JoinPath(elems...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", op, u.Path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &RemoteError{Status: resp.StatusCode, Message: truncate(string(body), maxErrorBodyLen)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &RemoteError{Status: resp.StatusCode, Message: fmt.Sprintf("decode %s: %v", op, err)}
	}
	return nil
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

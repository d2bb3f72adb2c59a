package collection

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

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond throttles writes against the collection
	// API, which meters by token.
	DefaultRequestsPerSecond = 5.0

	// DefaultBurst is the token bucket size.
	DefaultBurst = 3
)

// Config holds the settings for the collection destination.
type Config struct {
	// URL is the API base (e.g. https://api.example.com/v1).
	URL string

	// Token is the bearer token for the API.
	Token string

	// CollectionID selects the managed collection to sync into.
	CollectionID string

	// RequestsPerSecond overrides the client-side throttle.
	// Zero means DefaultRequestsPerSecond.
	RequestsPerSecond float64
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return ErrMissingURL
	}
	if strings.TrimSpace(c.Token) == "" {
		return ErrMissingToken
	}
	if strings.TrimSpace(c.CollectionID) == "" {
		return ErrMissingCollectionID
	}
	return nil
}

// Client is a minimal JSON client for the collection API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a collection API client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = DefaultTimeout

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		http:    hc,
		limiter: rate.NewLimiter(rate.Limit(rps), DefaultBurst),
	}, nil
}

// do performs one rate-limited JSON request. in is marshalled as the
// request body when non-nil; out is decoded from the response when
// non-nil and the server sent content.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("collection: encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("collection: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("collection: decode response: %w", err)
	}
	return nil
}

func (c *Client) closeIdle() {
	c.http.CloseIdleConnections()
}

// collectionPath builds a path under one collection.
func collectionPath(id, suffix string) string {
	return "/collections/" + url.PathEscape(id) + suffix
}

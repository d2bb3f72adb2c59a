package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is the client-side throttle. Supabase
	// projects rate limit aggressively on the free tier.
	DefaultRequestsPerSecond = 10.0

	// DefaultBurst is the token bucket size.
	DefaultBurst = 5
)

// Client is a minimal PostgREST HTTP client. The project key rides
// along twice: the oauth2 transport adds the bearer header, each
// request adds the apikey header Supabase expects.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a PostgREST client for the configured project.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Key})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = DefaultTimeout

	return &Client{
		baseURL: base,
		key:     cfg.Key,
		http:    hc,
		limiter: rate.NewLimiter(rate.Limit(rps), DefaultBurst),
	}, nil
}

// BaseURL returns the resolved PostgREST root.
func (c *Client) BaseURL() string { return c.baseURL }

// getJSON performs a rate-limited GET against a path under the root
// and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("postgrest: build request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("postgrest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("postgrest: decode response: %w", err)
	}
	return nil
}

func (c *Client) closeIdle() {
	c.http.CloseIdleConnections()
}

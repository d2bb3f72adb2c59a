package postgrest

import (
	"fmt"
	"net/url"
	"strings"
)

// Config holds the settings for a PostgREST source.
type Config struct {
	// URL is the Supabase project URL (e.g. https://xyz.supabase.co)
	// or the root of any PostgREST server. Supabase project URLs get
	// /rest/v1 appended; URLs that already carry a path are used as-is.
	URL string

	// Key is the anon or service role key. It is sent as the bearer
	// token and as the apikey header on every request.
	Key string

	// RequestsPerSecond overrides the client-side throttle.
	// Zero means DefaultRequestsPerSecond.
	RequestsPerSecond float64
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return ErrMissingURL
	}
	if strings.TrimSpace(c.Key) == "" {
		return ErrMissingKey
	}
	if _, err := normalizeBaseURL(c.URL); err != nil {
		return err
	}
	return nil
}

// normalizeBaseURL resolves the PostgREST root for a configured URL.
// Supabase projects serve PostgREST under /rest/v1, so bare
// *.supabase.co URLs get that suffix; everything else is taken as the
// server root the caller meant.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("postgrest: parse URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("postgrest: URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("postgrest: URL %q has no host", raw)
	}
	if u.Path == "" && strings.HasSuffix(u.Hostname(), ".supabase.co") {
		u.Path = "/rest/v1"
	}
	return strings.TrimRight(u.String(), "/"), nil
}

package transform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// toAsset converts image and file values. Objects already carrying a url
// pass through whole (extra keys such as alt text survive); URL strings are
// wrapped as {url: value}; anything else fails to the nil default.
func (c *Converter) toAsset(value any, target domain.FieldType) Result {
	switch v := value.(type) {
	case map[string]any:
		if u, ok := v["url"].(string); ok && strings.TrimSpace(u) != "" {
			return succeed(v)
		}
		return c.failure(target, fmt.Sprintf("object has no url key for %s", target))
	case string:
		trimmed := strings.TrimSpace(v)
		if !isValidURL(trimmed) {
			return c.failure(target, fmt.Sprintf("%q is not a valid %s url", v, target))
		}
		return succeed(map[string]any{"url": trimmed})
	default:
		return c.failure(target, fmt.Sprintf("cannot convert %T to %s", value, target))
	}
}

// toLink extracts urls from objects and repairs scheme-less strings by
// prepending https://. Unlike image/file, free text that still fails URL
// validation is returned unchanged as a success: links tolerate plain text.
func (c *Converter) toLink(value any) Result {
	switch v := value.(type) {
	case map[string]any:
		if u, ok := v["url"].(string); ok && strings.TrimSpace(u) != "" {
			return succeed(u)
		}
		if h, ok := v["href"].(string); ok && strings.TrimSpace(h) != "" {
			return succeed(h)
		}
		return c.failure(domain.FieldTypeLink, "object has no url or href key")
	case string:
		trimmed := strings.TrimSpace(v)
		if isValidURL(trimmed) {
			return succeed(trimmed)
		}
		if !strings.Contains(trimmed, "://") {
			if candidate := "https://" + trimmed; isValidURL(candidate) {
				return succeed(candidate)
			}
		}
		return succeed(v)
	default:
		return c.failure(domain.FieldTypeLink, fmt.Sprintf("cannot convert %T to link", value))
	}
}

// isValidURL accepts absolute URLs. http(s) additionally requires a host so
// bare "https://" does not pass.
func isValidURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return u.Host != ""
	}
	return true
}

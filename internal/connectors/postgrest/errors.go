package postgrest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// PostgREST-specific errors.
var (
	// ErrMissingURL indicates the configuration has no API URL.
	ErrMissingURL = errors.New("postgrest: API URL is required")

	// ErrMissingKey indicates the configuration has no API key.
	ErrMissingKey = errors.New("postgrest: API key is required")
)

// APIError represents a PostgREST API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("postgrest: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a missing table or endpoint.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized checks if the error indicates a bad or missing API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRateLimited checks if the error indicates server-side throttling.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// errorBody is the JSON error shape PostgREST returns.
type errorBody struct {
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
	Code    string `json:"code"`
}

// newAPIError builds an APIError from a non-2xx response, preferring
// the PostgREST error message over the HTTP status text.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		apiErr.URL = resp.Request.URL.Redacted()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
		if parsed.Hint != "" {
			apiErr.Message += " (" + parsed.Hint + ")"
		}
	}
	return apiErr
}

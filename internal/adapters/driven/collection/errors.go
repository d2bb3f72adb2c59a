package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Collection API errors.
var (
	// ErrMissingURL indicates the configuration has no API base URL.
	ErrMissingURL = errors.New("collection: API URL is required")

	// ErrMissingToken indicates the configuration has no access token.
	ErrMissingToken = errors.New("collection: access token is required")

	// ErrMissingCollectionID indicates no target collection was chosen.
	ErrMissingCollectionID = errors.New("collection: collection id is required")
)

// APIError represents a collection API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("collection: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsUnauthorized checks if the error indicates a bad or expired token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound checks if the error indicates a missing collection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// errorBody is the JSON error envelope the collection API returns.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response.
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
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		}
	}
	return apiErr
}

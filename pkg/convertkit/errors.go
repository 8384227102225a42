package convertkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the ConvertKit API. The
// API reports failures as {"error": "...", "message": "..."}.
type APIError struct {
	StatusCode int    `json:"-"       yaml:"-"`
	ErrorType  string `json:"error"   yaml:"error"`
	Message    string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status: %d)", e.ErrorType, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.ErrorType, e.Message, e.StatusCode)
}

// ParseAPIError parses an error response body. The status code is
// attached so callers can branch on it even when the body is empty or
// not the documented shape.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}

	if apiErr.ErrorType == "" {
		apiErr.ErrorType = http.StatusText(statusCode)
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks if the error is a rate limit rejection from the
// remote API. The client itself never rate limits.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrAPISecretRequired  = errors.New("endpoint needs API secret")
	ErrEmailRequired      = errors.New("email is required")
	ErrTagNameRequired    = errors.New("tag name is required")
	ErrFormSelectorNeeded = errors.New("form id or name is required")
	ErrFormNotFound       = errors.New("no form matched the search")
	ErrAmbiguousFormMatch = errors.New("more than one form matched the search")
)

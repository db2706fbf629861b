package books

import (
	"errors"
	"fmt"
)

// Common errors returned by the Google Books client.
var (
	// ErrNotFound indicates the query returned no usable volume.
	ErrNotFound = errors.New("volume not found in Google Books")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("Google Books rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with Google Books")

	// ErrInvalidResponse indicates an unexpected API payload.
	ErrInvalidResponse = errors.New("invalid response from Google Books")
)

// APIError represents an error response from the Google Books API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Google Books API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error indicates no volume was found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

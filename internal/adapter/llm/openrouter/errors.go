package openrouter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotInitialized is returned when no API key is configured.
	ErrNotInitialized = errors.New("openrouter: client not initialized")
	// ErrTransport wraps network failures talking to the endpoint.
	ErrTransport = errors.New("openrouter: transport error")
	// ErrNoContent is returned when the first choice carries no message content.
	ErrNoContent = errors.New("no content in response")
	// ErrInvalidResponseFormat is returned when the response envelope is
	// missing required fields or has fields of the wrong type.
	ErrInvalidResponseFormat = errors.New("invalid response format")
)

// HTTPError is a non-2xx response from the endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream HTTP error: status %d", e.StatusCode)
}

// Retryable reports whether the status is a server-side failure.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

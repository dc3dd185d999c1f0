package cardsclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned by calls that need a token before Login,
// Register or SetTokens was called.
var ErrNotAuthenticated = errors.New("cardsclient: not authenticated")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Details    []FieldError
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error: %d %s", e.StatusCode, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func newAPIError(code int, body *errorBody) *APIError {
	e := &APIError{StatusCode: code, Status: http.StatusText(code)}
	if body != nil {
		e.Message = body.Error
		e.Details = body.Details
	}
	return e
}

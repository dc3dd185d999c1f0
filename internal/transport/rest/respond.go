package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// maxBodyBytes bounds request bodies. A generate request carries at most
// 10000 characters of source text; an ASCII-only encoder writes a
// character outside the BMP as a 12-byte surrogate pair escape.
const maxBodyBytes = 128 << 10

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON value from the request body into dst.
// Malformed or oversized bodies yield a *domain.ValidationError for "body".
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", "request body too large")
		case errors.As(err, &typeErr):
			return domain.NewValidationError(typeErr.Field, fmt.Sprintf("must be %s", typeErr.Type))
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "request body is empty")
		default:
			return domain.NewValidationError("body", "invalid JSON")
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "unexpected data after JSON value")
	}
	return nil
}

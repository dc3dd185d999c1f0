package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// validationMessage is the top-level error for 400 responses with details.
const validationMessage = "invalid input data"

// handleError maps domain errors to HTTP responses. Unmapped errors are
// logged and answered with 500 and internalMsg.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   validationMessage,
			Details: domain.FieldErrors(err),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Already exists")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

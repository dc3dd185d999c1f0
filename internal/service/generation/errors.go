package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/llm/openrouter"
)

var (
	ErrServiceNotInitialized = errors.New("service not initialized")
	ErrSaveMetadata          = errors.New("error while saving generation metadata")
	ErrUpdateMetadata        = errors.New("error while updating generation metadata")
	ErrFlashcardsNotFound    = errors.New("invalid response format: flashcards array not found")
	ErrInvalidFlashcard      = errors.New("invalid response format: flashcard does not match schema")
	ErrGenerationFailed      = errors.New("failed to generate flashcards")
)

// errorCode classifies a failed model call for the error log.
func errorCode(err error) string {
	var httpErr *openrouter.HTTPError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &httpErr):
		return fmt.Sprintf("http_%d", httpErr.StatusCode)
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, openrouter.ErrTransport):
		return "transport"
	case errors.Is(err, openrouter.ErrNoContent):
		return "no_content"
	case errors.Is(err, openrouter.ErrInvalidResponseFormat):
		return "invalid_response"
	case errors.Is(err, ErrFlashcardsNotFound):
		return "flashcards_not_found"
	case errors.Is(err, ErrInvalidFlashcard):
		return "invalid_flashcard"
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return "parse_error"
	default:
		return "unknown"
	}
}

package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
	"github.com/xxxdendexxx/10x-cards/internal/service/generation"
)

type generationService interface {
	GenerateFlashcards(ctx context.Context, ownerID uuid.UUID, sourceText string) (*generation.Result, error)
	GetGeneration(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Generation, error)
}

// GenerationHandler serves the generate endpoint and generation records.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type generateRequest struct {
	SourceText string `json:"sourceText"`
}

type generateResponse struct {
	GenerationID   int64                      `json:"generation_id"`
	GeneratedCount int                        `json:"generated_count"`
	Flashcards     []domain.FlashcardProposal `json:"flashcards"`
}

type generationResponse struct {
	ID               int64     `json:"id"`
	Model            string    `json:"model"`
	SourceTextHash   string    `json:"source_text_hash"`
	SourceTextLength int       `json:"source_text_length"`
	DurationMs       int64     `json:"generation_duration"`
	GeneratedCount   int       `json:"generated_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Generate handles POST /api/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	result, err := h.svc.GenerateFlashcards(r.Context(), owner, req.SourceText)
	if err != nil {
		handleError(h.log, w, r, err, generateErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		GenerationID:   result.GenerationID,
		GeneratedCount: result.GeneratedCount,
		Flashcards:     result.Flashcards,
	})
}

// Get handles GET /api/generations/{id}.
func (h *GenerationHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a positive integer"), "")
		return
	}

	g, err := h.svc.GetGeneration(r.Context(), owner, id)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, generationResponse{
		ID:               g.ID,
		Model:            g.Model,
		SourceTextHash:   g.SourceTextHash,
		SourceTextLength: g.SourceTextLength,
		DurationMs:       g.DurationMs,
		GeneratedCount:   g.GeneratedCount,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	})
}

// generateErrorMessage exposes the orchestrator's own errors to the caller
// and hides anything else.
func generateErrorMessage(err error) string {
	switch {
	case errors.Is(err, generation.ErrServiceNotInitialized),
		errors.Is(err, generation.ErrSaveMetadata),
		errors.Is(err, generation.ErrUpdateMetadata),
		errors.Is(err, generation.ErrGenerationFailed):
		return err.Error()
	}
	return "internal server error"
}

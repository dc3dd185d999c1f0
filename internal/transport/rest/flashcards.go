package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
	"github.com/xxxdendexxx/10x-cards/internal/service/flashcard"
)

type flashcardService interface {
	CreateFlashcards(ctx context.Context, ownerID uuid.UUID, input flashcard.CreateInput) ([]domain.Flashcard, error)
	List(ctx context.Context, ownerID uuid.UUID, input flashcard.ListInput) (*flashcard.ListResult, error)
	Update(ctx context.Context, ownerID uuid.UUID, input flashcard.UpdateInput) (*domain.Flashcard, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// FlashcardHandler serves flashcard CRUD endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type cardRequest struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	Source       string `json:"source"`
	GenerationID *int64 `json:"generation_id"`
}

type createFlashcardsRequest struct {
	Flashcards []cardRequest `json:"flashcards"`
}

// updateFlashcardRequest keeps generation_id raw so that an explicit null
// can be told apart from an absent key.
type updateFlashcardRequest struct {
	Front        *string         `json:"front"`
	Back         *string         `json:"back"`
	Source       *string         `json:"source"`
	GenerationID json.RawMessage `json:"generation_id"`
}

type flashcardResponse struct {
	ID           string    `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Source       string    `json:"source"`
	GenerationID *int64    `json:"generation_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type createFlashcardsResponse struct {
	Flashcards []flashcardResponse `json:"flashcards"`
}

type paginationResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

type listFlashcardsResponse struct {
	Data       []flashcardResponse `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}

// Create handles POST /api/flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req createFlashcardsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	input := flashcard.CreateInput{Flashcards: make([]flashcard.CardInput, len(req.Flashcards))}
	for i, c := range req.Flashcards {
		input.Flashcards[i] = flashcard.CardInput{
			Front:        c.Front,
			Back:         c.Back,
			Source:       domain.FlashcardSource(c.Source),
			GenerationID: c.GenerationID,
		}
	}

	cards, err := h.svc.CreateFlashcards(r.Context(), owner, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createFlashcardsResponse{Flashcards: toFlashcardResponses(cards)})
}

// List handles GET /api/flashcards.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	input, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), owner, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listFlashcardsResponse{
		Data: toFlashcardResponses(result.Flashcards),
		Pagination: paginationResponse{
			Page:     result.Pagination.Page,
			PageSize: result.Pagination.PageSize,
			Total:    result.Pagination.Total,
		},
	})
}

// Update handles PUT /api/flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	id, err := parseFlashcardID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateFlashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	card, err := h.svc.Update(r.Context(), owner, flashcard.UpdateInput{ID: id, Patch: patch})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(*card))
}

// Delete handles DELETE /api/flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	id, err := parseFlashcardID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), owner, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FlashcardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err, "internal server error")
}

func (req updateFlashcardRequest) toPatch() (domain.FlashcardPatch, error) {
	patch := domain.FlashcardPatch{Front: req.Front, Back: req.Back}

	if req.Source != nil {
		src := domain.FlashcardSource(*req.Source)
		patch.Source = &src
	}

	if len(req.GenerationID) > 0 {
		patch.SetGenerationID = true
		if string(req.GenerationID) != "null" {
			var id int64
			if err := json.Unmarshal(req.GenerationID, &id); err != nil {
				return patch, domain.NewValidationError("generation_id", "must be an integer or null")
			}
			patch.GenerationID = &id
		}
	}

	return patch, nil
}

func parseFlashcardID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

// parseListQuery applies defaults for absent parameters. Present but
// malformed numbers are validation errors.
func parseListQuery(q url.Values) (flashcard.ListInput, error) {
	input := flashcard.DefaultListInput()
	ve := &domain.ValidationError{}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			ve.Add("page", "must be an integer")
		}
		input.Page = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			ve.Add("pageSize", "must be an integer")
		}
		input.PageSize = n
	}
	if v := q.Get("sortBy"); v != "" {
		input.SortBy = v
	}
	input.Source = q.Get("filter")

	return input, ve.OrNil()
}

func toFlashcardResponse(f domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:           f.ID.String(),
		Front:        f.Front,
		Back:         f.Back,
		Source:       f.Source.String(),
		GenerationID: f.GenerationID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func toFlashcardResponses(cards []domain.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = toFlashcardResponse(c)
	}
	return out
}

package flashcard

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// MaxBatchSize bounds the number of cards accepted in one create request.
const MaxBatchSize = 100

// CardInput is one card in a create request.
type CardInput struct {
	Front        string
	Back         string
	Source       domain.FlashcardSource
	GenerationID *int64
}

// CreateInput holds parameters for CreateFlashcards.
type CreateInput struct {
	Flashcards []CardInput
}

// Validate validates every card and collects all field errors.
func (i CreateInput) Validate() error {
	ve := &domain.ValidationError{}

	switch n := len(i.Flashcards); {
	case n == 0:
		ve.Add("flashcards", "must contain at least one flashcard")
	case n > MaxBatchSize:
		ve.Add("flashcards", fmt.Sprintf("must contain at most %d flashcards", MaxBatchSize))
	}

	for idx, c := range i.Flashcards {
		card := c.toDomain()
		ve.Errors = append(ve.Errors, card.Validate(fmt.Sprintf("flashcards[%d].", idx))...)
	}

	return ve.OrNil()
}

func (c CardInput) toDomain() domain.Flashcard {
	return domain.Flashcard{
		Front:        c.Front,
		Back:         c.Back,
		Source:       c.Source,
		GenerationID: c.GenerationID,
	}
}

// ListInput holds parameters for List. Callers apply defaults for
// parameters the user did not send; Validate rejects out-of-range values.
type ListInput struct {
	Page     int
	PageSize int
	SortBy   string
	Source   string
}

// DefaultListInput returns the listing defaults.
func DefaultListInput() ListInput {
	return ListInput{
		Page:     1,
		PageSize: domain.DefaultPageSize,
		SortBy:   string(domain.FlashcardSortCreatedAt),
	}
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	ve := &domain.ValidationError{}

	if i.Page < 1 {
		ve.Add("page", "must be at least 1")
	}
	if i.PageSize < 1 || i.PageSize > domain.MaxPageSize {
		ve.Add("pageSize", fmt.Sprintf("must be between 1 and %d", domain.MaxPageSize))
	}
	if !domain.FlashcardSort(i.SortBy).IsValid() {
		ve.Add("sortBy", "must be one of created_at, updated_at")
	}
	if i.Source != "" && !domain.FlashcardSource(i.Source).IsValid() {
		ve.Add("filter", "must be one of ai-full, ai-edited, manual")
	}

	return ve.OrNil()
}

func (i ListInput) toFilter() domain.FlashcardFilter {
	f := domain.FlashcardFilter{
		SortBy:   domain.FlashcardSort(i.SortBy),
		Page:     i.Page,
		PageSize: i.PageSize,
	}
	if i.Source != "" {
		src := domain.FlashcardSource(i.Source)
		f.Source = &src
	}
	return f
}

// UpdateInput holds parameters for Update.
type UpdateInput struct {
	ID    uuid.UUID
	Patch domain.FlashcardPatch
}

// Validate checks the input shape. Content rules are checked against the
// patched card.
func (i UpdateInput) Validate() error {
	ve := &domain.ValidationError{}

	if i.ID == uuid.Nil {
		ve.Add("id", "required")
	}
	if i.Patch.IsEmpty() {
		ve.Add("body", "at least one field must be provided")
	}

	return ve.OrNil()
}

package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// Update applies a partial update to a flashcard owned by ownerID.
// Editing the text of an ai-full card without naming a source marks it
// ai-edited.
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, input UpdateInput) (*domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.cards.GetByID(ctx, ownerID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("flashcard.Update: %w", err)
	}

	patch := input.Patch
	if patch.Source == nil && current.Source == domain.FlashcardSourceAIFull && textChanged(*current, patch) {
		edited := domain.FlashcardSourceAIEdited
		patch.Source = &edited
	}

	next := patch.Apply(*current)
	if errs := next.Validate(""); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	if patch.SetGenerationID && next.GenerationID != nil {
		if _, err := s.generations.GetByID(ctx, ownerID, *next.GenerationID); err != nil {
			return nil, fmt.Errorf("flashcard.Update generation %d: %w", *next.GenerationID, err)
		}
	}

	updated, err := s.cards.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("flashcard.Update: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("flashcard_id", updated.ID.String()),
		slog.String("source", updated.Source.String()),
	)

	return updated, nil
}

func textChanged(f domain.Flashcard, p domain.FlashcardPatch) bool {
	return (p.Front != nil && *p.Front != f.Front) || (p.Back != nil && *p.Back != f.Back)
}

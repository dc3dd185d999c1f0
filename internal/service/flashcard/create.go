package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// CreateFlashcards stores all cards for ownerID in one insert.
// Referenced generations must exist and belong to ownerID.
func (s *Service) CreateFlashcards(ctx context.Context, ownerID uuid.UUID, input CreateInput) ([]domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGenerations(ctx, ownerID, input.Flashcards); err != nil {
		return nil, fmt.Errorf("flashcard.CreateFlashcards: %w", err)
	}

	cards := make([]domain.Flashcard, len(input.Flashcards))
	for i, c := range input.Flashcards {
		cards[i] = c.toDomain()
		cards[i].UserID = ownerID
	}

	created, err := s.cards.CreateBatch(ctx, ownerID, cards)
	if err != nil {
		return nil, fmt.Errorf("flashcard.CreateFlashcards: %w", err)
	}

	s.log.InfoContext(ctx, "flashcards created",
		slog.String("user_id", ownerID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}

// checkGenerations looks up every distinct generation id once.
func (s *Service) checkGenerations(ctx context.Context, ownerID uuid.UUID, cards []CardInput) error {
	seen := make(map[int64]struct{})
	for _, c := range cards {
		if c.GenerationID == nil {
			continue
		}
		id := *c.GenerationID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, err := s.generations.GetByID(ctx, ownerID, id); err != nil {
			return fmt.Errorf("generation %d: %w", id, err)
		}
	}
	return nil
}

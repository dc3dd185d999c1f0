package flashcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// List returns one page of ownerID's non-deleted flashcards.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.toFilter()
	cards, total, err := s.cards.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("flashcard.List: %w", err)
	}

	res := &ListResult{Flashcards: cards}
	res.Pagination.Page = filter.Page
	res.Pagination.PageSize = filter.PageSize
	res.Pagination.Total = total
	return res, nil
}

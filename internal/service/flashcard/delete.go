package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Delete soft-deletes a flashcard. Cards that are missing, already deleted
// or owned by someone else all report domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.cards.SoftDelete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("flashcard.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deleted", slog.String("flashcard_id", id.String()))
	return nil
}

// PurgeDeleted permanently removes soft-deleted cards last touched more
// than retention ago.
func (s *Service) PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention)

	n, err := s.cards.HardDeleteOld(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("flashcard.PurgeDeleted: %w", err)
	}

	s.log.InfoContext(ctx, "purged deleted flashcards",
		slog.Int64("count", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}

package flashcard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// flashcardRepo defines the flashcard repository interface needed by the service.
type flashcardRepo interface {
	CreateBatch(ctx context.Context, ownerID uuid.UUID, cards []domain.Flashcard) ([]domain.Flashcard, error)
	List(ctx context.Context, ownerID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Flashcard, error)
	Update(ctx context.Context, f *domain.Flashcard) (*domain.Flashcard, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	HardDeleteOld(ctx context.Context, before time.Time) (int64, error)
}

// generationRepo is used to check that referenced generations belong to the owner.
type generationRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error)
}

// Service implements operations on a user's flashcard collection.
type Service struct {
	log         *slog.Logger
	cards       flashcardRepo
	generations generationRepo
	now         func() time.Time
}

// NewService creates a new flashcard service.
func NewService(logger *slog.Logger, cards flashcardRepo, generations generationRepo) *Service {
	return &Service{
		log:         logger.With("service", "flashcard"),
		cards:       cards,
		generations: generations,
		now:         time.Now,
	}
}

// ListResult is one page of flashcards.
type ListResult struct {
	Flashcards []domain.Flashcard
	Pagination domain.Pagination
}

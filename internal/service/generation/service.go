package generation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/llm/openrouter"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// generationRepo defines the generation repository interface needed by the service.
type generationRepo interface {
	Create(ctx context.Context, g *domain.Generation) (*domain.Generation, error)
	UpdateMetrics(ctx context.Context, id int64, durationMs int64, generatedCount int) error
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error)
}

// errorLogRepo defines the generation error log repository interface needed by the service.
type errorLogRepo interface {
	Create(ctx context.Context, e *domain.GenerationErrorLog) error
}

// gateway is the chat-completion client the service sends prompts to.
type gateway interface {
	SendMessage(ctx context.Context, userPrompt string, extraParams map[string]any) (*openrouter.ChatResponse, error)
	Initialized() bool
	Model() string
}

// Service orchestrates flashcard generation: it records the request, calls
// the model and stores the resulting metrics.
type Service struct {
	log         *slog.Logger
	generations generationRepo
	errorLogs   errorLogRepo
	gateway     gateway
}

// NewService creates a new generation service. gw may be nil, in which case
// every generation fails with ErrServiceNotInitialized.
func NewService(
	logger *slog.Logger,
	generations generationRepo,
	errorLogs errorLogRepo,
	gw gateway,
) *Service {
	return &Service{
		log:         logger.With("service", "generation"),
		generations: generations,
		errorLogs:   errorLogs,
		gateway:     gw,
	}
}

// Result is returned by GenerateFlashcards.
type Result struct {
	GenerationID   int64
	GeneratedCount int
	Flashcards     []domain.FlashcardProposal
}

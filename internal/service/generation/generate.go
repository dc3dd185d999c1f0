package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

const analysisPrompt = `Please analyze the following text and create flashcards from it. For each important concept, create a question-answer pair.
Format your response as a JSON array of flashcard objects, where each object has:
- "front": The question or concept (max 200 characters)
- "back": The answer or explanation (max 500 characters)
- "source": Always set to "ai-full"

Text to analyze:
`

// GenerateFlashcards asks the model for flashcard proposals for sourceText.
//
// A generation record is created before the model is called and updated
// with the call's duration and card count afterwards. The record is never
// rolled back: if the model call or the update fails it stays zeroed.
func (s *Service) GenerateFlashcards(ctx context.Context, ownerID uuid.UUID, sourceText string) (*Result, error) {
	if err := validateSourceText(sourceText); err != nil {
		return nil, err
	}

	if s.gateway == nil || !s.gateway.Initialized() {
		return nil, ErrServiceNotInitialized
	}

	gen, err := s.generations.Create(ctx, domain.NewGeneration(ownerID, s.gateway.Model(), sourceText))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveMetadata, err)
	}

	start := time.Now()
	proposals, err := s.callModel(ctx, sourceText)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		s.logFailure(ctx, gen, err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if err := s.generations.UpdateMetrics(ctx, gen.ID, duration, len(proposals)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateMetadata, err)
	}

	s.log.InfoContext(ctx, "flashcards generated",
		slog.Int64("generation_id", gen.ID),
		slog.Int("count", len(proposals)),
		slog.Int64("duration_ms", duration),
	)

	return &Result{
		GenerationID:   gen.ID,
		GeneratedCount: len(proposals),
		Flashcards:     proposals,
	}, nil
}

// GetGeneration returns a generation record owned by ownerID.
func (s *Service) GetGeneration(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Generation, error) {
	gen, err := s.generations.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("generation.GetGeneration: %w", err)
	}
	return gen, nil
}

func (s *Service) callModel(ctx context.Context, sourceText string) ([]domain.FlashcardProposal, error) {
	resp, err := s.gateway.SendMessage(ctx, analysisPrompt+sourceText, nil)
	if err != nil {
		return nil, err
	}
	return parseProposals(resp.Answer)
}

// parseProposals decodes the model's answer. Every item must carry exactly
// front, back and source, with front and back within the flashcard limits.
// Every proposal is marked ai-full regardless of what the model put in source.
func parseProposals(answer string) ([]domain.FlashcardProposal, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(answer), &payload); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}

	raw, ok := payload["flashcards"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		return nil, ErrFlashcardsNotFound
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode flashcards: %w", err)
	}

	proposals := make([]domain.FlashcardProposal, 0, len(items))
	for i, item := range items {
		p, err := parseProposal(item)
		if err != nil {
			return nil, fmt.Errorf("%w: flashcards[%d]: %s", ErrInvalidFlashcard, i, err)
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

type proposalItem struct {
	Front  *string `json:"front"`
	Back   *string `json:"back"`
	Source *string `json:"source"`
}

func parseProposal(item json.RawMessage) (domain.FlashcardProposal, error) {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.DisallowUnknownFields()

	var it proposalItem
	if err := dec.Decode(&it); err != nil {
		return domain.FlashcardProposal{}, err
	}

	switch {
	case it.Front == nil:
		return domain.FlashcardProposal{}, errors.New("front is missing")
	case it.Back == nil:
		return domain.FlashcardProposal{}, errors.New("back is missing")
	case it.Source == nil:
		return domain.FlashcardProposal{}, errors.New("source is missing")
	}

	front, back := *it.Front, *it.Back
	switch {
	case strings.TrimSpace(front) == "":
		return domain.FlashcardProposal{}, errors.New("front is blank")
	case strings.TrimSpace(back) == "":
		return domain.FlashcardProposal{}, errors.New("back is blank")
	case utf8.RuneCountInString(front) > domain.MaxFrontLength:
		return domain.FlashcardProposal{}, fmt.Errorf("front exceeds %d characters", domain.MaxFrontLength)
	case utf8.RuneCountInString(back) > domain.MaxBackLength:
		return domain.FlashcardProposal{}, fmt.Errorf("back exceeds %d characters", domain.MaxBackLength)
	}

	return domain.FlashcardProposal{
		Front:  front,
		Back:   back,
		Source: domain.FlashcardSourceAIFull,
	}, nil
}

// logFailure writes the error log entry. Failures are logged and swallowed.
func (s *Service) logFailure(ctx context.Context, gen *domain.Generation, cause error) {
	entry := &domain.GenerationErrorLog{
		UserID:           gen.UserID,
		Model:            gen.Model,
		SourceTextHash:   gen.SourceTextHash,
		SourceTextLength: gen.SourceTextLength,
		ErrorCode:        errorCode(cause),
		ErrorMessage:     cause.Error(),
	}

	s.log.WarnContext(ctx, "generation failed",
		slog.Int64("generation_id", gen.ID),
		slog.String("error_code", entry.ErrorCode),
		slog.String("error", cause.Error()),
	)

	if err := s.errorLogs.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.ErrorContext(ctx, "write generation error log",
			slog.Int64("generation_id", gen.ID),
			slog.String("error", err.Error()),
		)
	}
}

func validateSourceText(text string) error {
	switch n := domain.SourceTextLength(text); {
	case n < domain.MinSourceTextLength:
		return domain.NewValidationError("sourceText", "must be at least 1000 characters")
	case n > domain.MaxSourceTextLength:
		return domain.NewValidationError("sourceText", "must be at most 10000 characters")
	}
	return nil
}

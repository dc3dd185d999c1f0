package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
	"github.com/xxxdendexxx/10x-cards/internal/service/generation"
)

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateFlashcardsFunc func(ctx context.Context, ownerID uuid.UUID, sourceText string) (*generation.Result, error)
	GetGenerationFunc      func(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Generation, error)

	calls struct {
		GenerateFlashcards []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			SourceText string
		}
		GetGeneration []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      int64
		}
	}
	lockGenerateFlashcards sync.RWMutex
	lockGetGeneration      sync.RWMutex
}

func (mock *generationServiceMock) GenerateFlashcards(ctx context.Context, ownerID uuid.UUID, sourceText string) (*generation.Result, error) {
	if mock.GenerateFlashcardsFunc == nil {
		panic("generationServiceMock.GenerateFlashcardsFunc: method is nil but generationService.GenerateFlashcards was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		SourceText string
	}{Ctx: ctx, OwnerID: ownerID, SourceText: sourceText}
	mock.lockGenerateFlashcards.Lock()
	mock.calls.GenerateFlashcards = append(mock.calls.GenerateFlashcards, callInfo)
	mock.lockGenerateFlashcards.Unlock()
	return mock.GenerateFlashcardsFunc(ctx, ownerID, sourceText)
}

func (mock *generationServiceMock) GenerateFlashcardsCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	SourceText string
} {
	mock.lockGenerateFlashcards.RLock()
	calls := mock.calls.GenerateFlashcards
	mock.lockGenerateFlashcards.RUnlock()
	return calls
}

func (mock *generationServiceMock) GetGeneration(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Generation, error) {
	if mock.GetGenerationFunc == nil {
		panic("generationServiceMock.GetGenerationFunc: method is nil but generationService.GetGeneration was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetGeneration.Lock()
	mock.calls.GetGeneration = append(mock.calls.GetGeneration, callInfo)
	mock.lockGetGeneration.Unlock()
	return mock.GetGenerationFunc(ctx, ownerID, id)
}

func (mock *generationServiceMock) GetGenerationCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      int64
} {
	mock.lockGetGeneration.RLock()
	calls := mock.calls.GetGeneration
	mock.lockGetGeneration.RUnlock()
	return calls
}

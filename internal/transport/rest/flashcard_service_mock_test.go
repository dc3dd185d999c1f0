package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
	"github.com/xxxdendexxx/10x-cards/internal/service/flashcard"
)

var _ flashcardService = &flashcardServiceMock{}

type flashcardServiceMock struct {
	CreateFlashcardsFunc func(ctx context.Context, ownerID uuid.UUID, input flashcard.CreateInput) ([]domain.Flashcard, error)
	DeleteFunc           func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	ListFunc             func(ctx context.Context, ownerID uuid.UUID, input flashcard.ListInput) (*flashcard.ListResult, error)
	UpdateFunc           func(ctx context.Context, ownerID uuid.UUID, input flashcard.UpdateInput) (*domain.Flashcard, error)

	calls struct {
		CreateFlashcards []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   flashcard.CreateInput
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   flashcard.ListInput
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   flashcard.UpdateInput
		}
	}
	lockCreateFlashcards sync.RWMutex
	lockDelete           sync.RWMutex
	lockList             sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *flashcardServiceMock) CreateFlashcards(ctx context.Context, ownerID uuid.UUID, input flashcard.CreateInput) ([]domain.Flashcard, error) {
	if mock.CreateFlashcardsFunc == nil {
		panic("flashcardServiceMock.CreateFlashcardsFunc: method is nil but flashcardService.CreateFlashcards was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   flashcard.CreateInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockCreateFlashcards.Lock()
	mock.calls.CreateFlashcards = append(mock.calls.CreateFlashcards, callInfo)
	mock.lockCreateFlashcards.Unlock()
	return mock.CreateFlashcardsFunc(ctx, ownerID, input)
}

func (mock *flashcardServiceMock) CreateFlashcardsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   flashcard.CreateInput
} {
	mock.lockCreateFlashcards.RLock()
	calls := mock.calls.CreateFlashcards
	mock.lockCreateFlashcards.RUnlock()
	return calls
}

func (mock *flashcardServiceMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("flashcardServiceMock.DeleteFunc: method is nil but flashcardService.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *flashcardServiceMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *flashcardServiceMock) List(ctx context.Context, ownerID uuid.UUID, input flashcard.ListInput) (*flashcard.ListResult, error) {
	if mock.ListFunc == nil {
		panic("flashcardServiceMock.ListFunc: method is nil but flashcardService.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   flashcard.ListInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, input)
}

func (mock *flashcardServiceMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   flashcard.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *flashcardServiceMock) Update(ctx context.Context, ownerID uuid.UUID, input flashcard.UpdateInput) (*domain.Flashcard, error) {
	if mock.UpdateFunc == nil {
		panic("flashcardServiceMock.UpdateFunc: method is nil but flashcardService.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   flashcard.UpdateInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, input)
}

func (mock *flashcardServiceMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   flashcard.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

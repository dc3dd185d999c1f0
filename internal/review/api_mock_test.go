package review

import (
	"context"
	"sync"

	"github.com/xxxdendexxx/10x-cards/pkg/cardsclient"
)

var _ API = &APIMock{}

type APIMock struct {
	CreateFlashcardsFunc func(ctx context.Context, cards []cardsclient.NewFlashcard) ([]cardsclient.Flashcard, error)
	GenerateFunc         func(ctx context.Context, sourceText string) (*cardsclient.GenerateResult, error)
	UpdateFlashcardFunc  func(ctx context.Context, id string, u cardsclient.FlashcardUpdate) (*cardsclient.Flashcard, error)

	calls struct {
		CreateFlashcards []struct {
			Ctx   context.Context
			Cards []cardsclient.NewFlashcard
		}
		Generate []struct {
			Ctx        context.Context
			SourceText string
		}
		UpdateFlashcard []struct {
			Ctx context.Context
			ID  string
			U   cardsclient.FlashcardUpdate
		}
	}
	lockCreateFlashcards sync.RWMutex
	lockGenerate         sync.RWMutex
	lockUpdateFlashcard  sync.RWMutex
}

func (mock *APIMock) CreateFlashcards(ctx context.Context, cards []cardsclient.NewFlashcard) ([]cardsclient.Flashcard, error) {
	if mock.CreateFlashcardsFunc == nil {
		panic("APIMock.CreateFlashcardsFunc: method is nil but API.CreateFlashcards was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Cards []cardsclient.NewFlashcard
	}{Ctx: ctx, Cards: cards}
	mock.lockCreateFlashcards.Lock()
	mock.calls.CreateFlashcards = append(mock.calls.CreateFlashcards, callInfo)
	mock.lockCreateFlashcards.Unlock()
	return mock.CreateFlashcardsFunc(ctx, cards)
}

func (mock *APIMock) CreateFlashcardsCalls() []struct {
	Ctx   context.Context
	Cards []cardsclient.NewFlashcard
} {
	mock.lockCreateFlashcards.RLock()
	calls := mock.calls.CreateFlashcards
	mock.lockCreateFlashcards.RUnlock()
	return calls
}

func (mock *APIMock) Generate(ctx context.Context, sourceText string) (*cardsclient.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("APIMock.GenerateFunc: method is nil but API.Generate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SourceText string
	}{Ctx: ctx, SourceText: sourceText}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, sourceText)
}

func (mock *APIMock) GenerateCalls() []struct {
	Ctx        context.Context
	SourceText string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *APIMock) UpdateFlashcard(ctx context.Context, id string, u cardsclient.FlashcardUpdate) (*cardsclient.Flashcard, error) {
	if mock.UpdateFlashcardFunc == nil {
		panic("APIMock.UpdateFlashcardFunc: method is nil but API.UpdateFlashcard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		U   cardsclient.FlashcardUpdate
	}{Ctx: ctx, ID: id, U: u}
	mock.lockUpdateFlashcard.Lock()
	mock.calls.UpdateFlashcard = append(mock.calls.UpdateFlashcard, callInfo)
	mock.lockUpdateFlashcard.Unlock()
	return mock.UpdateFlashcardFunc(ctx, id, u)
}

func (mock *APIMock) UpdateFlashcardCalls() []struct {
	Ctx context.Context
	ID  string
	U   cardsclient.FlashcardUpdate
} {
	mock.lockUpdateFlashcard.RLock()
	calls := mock.calls.UpdateFlashcard
	mock.lockUpdateFlashcard.RUnlock()
	return calls
}

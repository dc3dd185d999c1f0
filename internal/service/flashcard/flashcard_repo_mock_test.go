package flashcard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	CreateBatchFunc   func(ctx context.Context, ownerID uuid.UUID, cards []domain.Flashcard) ([]domain.Flashcard, error)
	GetByIDFunc       func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Flashcard, error)
	HardDeleteOldFunc func(ctx context.Context, before time.Time) (int64, error)
	ListFunc          func(ctx context.Context, ownerID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
	SoftDeleteFunc    func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	UpdateFunc        func(ctx context.Context, f *domain.Flashcard) (*domain.Flashcard, error)

	calls struct {
		CreateBatch []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Cards   []domain.Flashcard
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		HardDeleteOld []struct {
			Ctx    context.Context
			Before time.Time
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.FlashcardFilter
		}
		SoftDelete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			F   *domain.Flashcard
		}
	}
	lockCreateBatch   sync.RWMutex
	lockGetByID       sync.RWMutex
	lockHardDeleteOld sync.RWMutex
	lockList          sync.RWMutex
	lockSoftDelete    sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *flashcardRepoMock) CreateBatch(ctx context.Context, ownerID uuid.UUID, cards []domain.Flashcard) ([]domain.Flashcard, error) {
	if mock.CreateBatchFunc == nil {
		panic("flashcardRepoMock.CreateBatchFunc: method is nil but flashcardRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Cards   []domain.Flashcard
	}{Ctx: ctx, OwnerID: ownerID, Cards: cards}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, ownerID, cards)
}

func (mock *flashcardRepoMock) CreateBatchCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Cards   []domain.Flashcard
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Flashcard, error) {
	if mock.GetByIDFunc == nil {
		panic("flashcardRepoMock.GetByIDFunc: method is nil but flashcardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *flashcardRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) HardDeleteOld(ctx context.Context, before time.Time) (int64, error) {
	if mock.HardDeleteOldFunc == nil {
		panic("flashcardRepoMock.HardDeleteOldFunc: method is nil but flashcardRepo.HardDeleteOld was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before time.Time
	}{Ctx: ctx, Before: before}
	mock.lockHardDeleteOld.Lock()
	mock.calls.HardDeleteOld = append(mock.calls.HardDeleteOld, callInfo)
	mock.lockHardDeleteOld.Unlock()
	return mock.HardDeleteOldFunc(ctx, before)
}

func (mock *flashcardRepoMock) HardDeleteOldCalls() []struct {
	Ctx    context.Context
	Before time.Time
} {
	mock.lockHardDeleteOld.RLock()
	calls := mock.calls.HardDeleteOld
	mock.lockHardDeleteOld.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	if mock.ListFunc == nil {
		panic("flashcardRepoMock.ListFunc: method is nil but flashcardRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.FlashcardFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *flashcardRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.FlashcardFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) SoftDelete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("flashcardRepoMock.SoftDeleteFunc: method is nil but flashcardRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, ownerID, id)
}

func (mock *flashcardRepoMock) SoftDeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) Update(ctx context.Context, f *domain.Flashcard) (*domain.Flashcard, error) {
	if mock.UpdateFunc == nil {
		panic("flashcardRepoMock.UpdateFunc: method is nil but flashcardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Flashcard
	}{Ctx: ctx, F: f}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, f)
}

func (mock *flashcardRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	F   *domain.Flashcard
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

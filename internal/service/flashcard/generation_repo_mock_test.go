package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

var _ generationRepo = &generationRepoMock{}

type generationRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *generationRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error) {
	if mock.GetByIDFunc == nil {
		panic("generationRepoMock.GetByIDFunc: method is nil but generationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     int64
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *generationRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

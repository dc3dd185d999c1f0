package generation

import (
	"context"
	"sync"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

var _ errorLogRepo = &errorLogRepoMock{}

type errorLogRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.GenerationErrorLog) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.GenerationErrorLog
		}
	}
	lockCreate sync.RWMutex
}

func (mock *errorLogRepoMock) Create(ctx context.Context, e *domain.GenerationErrorLog) error {
	if mock.CreateFunc == nil {
		panic("errorLogRepoMock.CreateFunc: method is nil but errorLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.GenerationErrorLog
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *errorLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.GenerationErrorLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

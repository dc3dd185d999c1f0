package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

var _ generationRepo = &generationRepoMock{}

type generationRepoMock struct {
	CreateFunc        func(ctx context.Context, g *domain.Generation) (*domain.Generation, error)
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error)
	UpdateMetricsFunc func(ctx context.Context, id int64, durationMs int64, generatedCount int) error

	calls struct {
		Create []struct {
			Ctx context.Context
			G   *domain.Generation
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     int64
		}
		UpdateMetrics []struct {
			Ctx            context.Context
			ID             int64
			DurationMs     int64
			GeneratedCount int
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockUpdateMetrics sync.RWMutex
}

func (mock *generationRepoMock) Create(ctx context.Context, g *domain.Generation) (*domain.Generation, error) {
	if mock.CreateFunc == nil {
		panic("generationRepoMock.CreateFunc: method is nil but generationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Generation
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *generationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Generation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *generationRepoMock) UpdateMetrics(ctx context.Context, id int64, durationMs int64, generatedCount int) error {
	if mock.UpdateMetricsFunc == nil {
		panic("generationRepoMock.UpdateMetricsFunc: method is nil but generationRepo.UpdateMetrics was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ID             int64
		DurationMs     int64
		GeneratedCount int
	}{Ctx: ctx, ID: id, DurationMs: durationMs, GeneratedCount: generatedCount}
	mock.lockUpdateMetrics.Lock()
	mock.calls.UpdateMetrics = append(mock.calls.UpdateMetrics, callInfo)
	mock.lockUpdateMetrics.Unlock()
	return mock.UpdateMetricsFunc(ctx, id, durationMs, generatedCount)
}

func (mock *generationRepoMock) UpdateMetricsCalls() []struct {
	Ctx            context.Context
	ID             int64
	DurationMs     int64
	GeneratedCount int
} {
	mock.lockUpdateMetrics.RLock()
	calls := mock.calls.UpdateMetrics
	mock.lockUpdateMetrics.RUnlock()
	return calls
}

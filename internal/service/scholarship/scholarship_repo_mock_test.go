package scholarship

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

var _ scholarshipRepo = &scholarshipRepoMock{}

type scholarshipRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
	ListFunc    func(ctx context.Context, limit int) ([]domain.Scholarship, error)
	CreateFunc  func(ctx context.Context, s *domain.Scholarship) (*domain.Scholarship, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, fields domain.ScholarshipUpdate) (*domain.Scholarship, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Limit int
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Scholarship
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Fields domain.ScholarshipUpdate
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *scholarshipRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error) {
	if mock.GetByIDFunc == nil {
		panic("scholarshipRepoMock.GetByIDFunc: method is nil but scholarshipRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *scholarshipRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *scholarshipRepoMock) List(ctx context.Context, limit int) ([]domain.Scholarship, error) {
	if mock.ListFunc == nil {
		panic("scholarshipRepoMock.ListFunc: method is nil but scholarshipRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit)
}

func (mock *scholarshipRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *scholarshipRepoMock) Create(ctx context.Context, s *domain.Scholarship) (*domain.Scholarship, error) {
	if mock.CreateFunc == nil {
		panic("scholarshipRepoMock.CreateFunc: method is nil but scholarshipRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Scholarship
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *scholarshipRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Scholarship
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scholarshipRepoMock) Update(ctx context.Context, id uuid.UUID, fields domain.ScholarshipUpdate) (*domain.Scholarship, error) {
	if mock.UpdateFunc == nil {
		panic("scholarshipRepoMock.UpdateFunc: method is nil but scholarshipRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Fields domain.ScholarshipUpdate
	}{Ctx: ctx, ID: id, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, fields)
}

func (mock *scholarshipRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Fields domain.ScholarshipUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scholarshipRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("scholarshipRepoMock.DeleteFunc: method is nil but scholarshipRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *scholarshipRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

var _ appRepo = &appRepoMock{}

type appRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByUserEmailFunc  func(ctx context.Context, email string) ([]domain.Application, error)
	ListAllFunc          func(ctx context.Context) ([]domain.Application, error)
	CreateFunc           func(ctx context.Context, a *domain.Application) (*domain.Application, error)
	UpdateContactFunc    func(ctx context.Context, id uuid.UUID, phone, address string) error
	UpdateModerationFunc func(ctx context.Context, id uuid.UUID, status *domain.ApplicationStatus, feedback *string) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUserEmail []struct {
			Ctx   context.Context
			Email string
		}
		ListAll []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Application
		}
		UpdateContact []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Phone   string
			Address string
		}
		UpdateModeration []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Status   *domain.ApplicationStatus
			Feedback *string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockListByUserEmail  sync.RWMutex
	lockListAll          sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdateContact    sync.RWMutex
	lockUpdateModeration sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *appRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("appRepoMock.GetByIDFunc: method is nil but appRepo.GetByID was just called")
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

func (mock *appRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *appRepoMock) ListByUserEmail(ctx context.Context, email string) ([]domain.Application, error) {
	if mock.ListByUserEmailFunc == nil {
		panic("appRepoMock.ListByUserEmailFunc: method is nil but appRepo.ListByUserEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockListByUserEmail.Lock()
	mock.calls.ListByUserEmail = append(mock.calls.ListByUserEmail, callInfo)
	mock.lockListByUserEmail.Unlock()
	return mock.ListByUserEmailFunc(ctx, email)
}

func (mock *appRepoMock) ListByUserEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockListByUserEmail.RLock()
	calls := mock.calls.ListByUserEmail
	mock.lockListByUserEmail.RUnlock()
	return calls
}

func (mock *appRepoMock) ListAll(ctx context.Context) ([]domain.Application, error) {
	if mock.ListAllFunc == nil {
		panic("appRepoMock.ListAllFunc: method is nil but appRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *appRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *appRepoMock) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("appRepoMock.CreateFunc: method is nil but appRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Application
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *appRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *appRepoMock) UpdateContact(ctx context.Context, id uuid.UUID, phone, address string) error {
	if mock.UpdateContactFunc == nil {
		panic("appRepoMock.UpdateContactFunc: method is nil but appRepo.UpdateContact was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Phone   string
		Address string
	}{Ctx: ctx, ID: id, Phone: phone, Address: address}
	mock.lockUpdateContact.Lock()
	mock.calls.UpdateContact = append(mock.calls.UpdateContact, callInfo)
	mock.lockUpdateContact.Unlock()
	return mock.UpdateContactFunc(ctx, id, phone, address)
}

func (mock *appRepoMock) UpdateContactCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Phone   string
	Address string
} {
	mock.lockUpdateContact.RLock()
	calls := mock.calls.UpdateContact
	mock.lockUpdateContact.RUnlock()
	return calls
}

func (mock *appRepoMock) UpdateModeration(ctx context.Context, id uuid.UUID, status *domain.ApplicationStatus, feedback *string) error {
	if mock.UpdateModerationFunc == nil {
		panic("appRepoMock.UpdateModerationFunc: method is nil but appRepo.UpdateModeration was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Status   *domain.ApplicationStatus
		Feedback *string
	}{Ctx: ctx, ID: id, Status: status, Feedback: feedback}
	mock.lockUpdateModeration.Lock()
	mock.calls.UpdateModeration = append(mock.calls.UpdateModeration, callInfo)
	mock.lockUpdateModeration.Unlock()
	return mock.UpdateModerationFunc(ctx, id, status, feedback)
}

func (mock *appRepoMock) UpdateModerationCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Status   *domain.ApplicationStatus
	Feedback *string
} {
	mock.lockUpdateModeration.RLock()
	calls := mock.calls.UpdateModeration
	mock.lockUpdateModeration.RUnlock()
	return calls
}

func (mock *appRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("appRepoMock.DeleteFunc: method is nil but appRepo.Delete was just called")
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

func (mock *appRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

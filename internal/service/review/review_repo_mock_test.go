package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByScholarshipFunc func(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Review, error)
	ListByUserFunc        func(ctx context.Context, email string) ([]domain.Review, error)
	ListAllFunc           func(ctx context.Context) ([]domain.Review, error)
	CreateFunc            func(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	UpdateFunc            func(ctx context.Context, id uuid.UUID, comment string, rating int, reviewDate time.Time) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByScholarship []struct {
			Ctx           context.Context
			ScholarshipID uuid.UUID
		}
		ListByUser []struct {
			Ctx   context.Context
			Email string
		}
		ListAll []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			Rv  *domain.Review
		}
		Update []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Comment    string
			Rating     int
			ReviewDate time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockListByScholarship sync.RWMutex
	lockListByUser        sync.RWMutex
	lockListAll           sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *reviewRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if mock.GetByIDFunc == nil {
		panic("reviewRepoMock.GetByIDFunc: method is nil but reviewRepo.GetByID was just called")
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

func (mock *reviewRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByScholarship(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Review, error) {
	if mock.ListByScholarshipFunc == nil {
		panic("reviewRepoMock.ListByScholarshipFunc: method is nil but reviewRepo.ListByScholarship was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ScholarshipID uuid.UUID
	}{Ctx: ctx, ScholarshipID: scholarshipID}
	mock.lockListByScholarship.Lock()
	mock.calls.ListByScholarship = append(mock.calls.ListByScholarship, callInfo)
	mock.lockListByScholarship.Unlock()
	return mock.ListByScholarshipFunc(ctx, scholarshipID)
}

func (mock *reviewRepoMock) ListByScholarshipCalls() []struct {
	Ctx           context.Context
	ScholarshipID uuid.UUID
} {
	mock.lockListByScholarship.RLock()
	calls := mock.calls.ListByScholarship
	mock.lockListByScholarship.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByUser(ctx context.Context, email string) ([]domain.Review, error) {
	if mock.ListByUserFunc == nil {
		panic("reviewRepoMock.ListByUserFunc: method is nil but reviewRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, email)
}

func (mock *reviewRepoMock) ListByUserCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListAll(ctx context.Context) ([]domain.Review, error) {
	if mock.ListAllFunc == nil {
		panic("reviewRepoMock.ListAllFunc: method is nil but reviewRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *reviewRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rv  *domain.Review
	}{Ctx: ctx, Rv: rv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rv)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rv  *domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Update(ctx context.Context, id uuid.UUID, comment string, rating int, reviewDate time.Time) error {
	if mock.UpdateFunc == nil {
		panic("reviewRepoMock.UpdateFunc: method is nil but reviewRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Comment    string
		Rating     int
		ReviewDate time.Time
	}{Ctx: ctx, ID: id, Comment: comment, Rating: rating, ReviewDate: reviewDate}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, comment, rating, reviewDate)
}

func (mock *reviewRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Comment    string
	Rating     int
	ReviewDate time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reviewRepoMock.DeleteFunc: method is nil but reviewRepo.Delete was just called")
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

func (mock *reviewRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ appRepo = &appRepoMock{}

type appRepoMock struct {
	MarkPaidFunc func(ctx context.Context, id uuid.UUID) (int64, error)

	calls struct {
		MarkPaid []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockMarkPaid sync.RWMutex
}

func (mock *appRepoMock) MarkPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	if mock.MarkPaidFunc == nil {
		panic("appRepoMock.MarkPaidFunc: method is nil but appRepo.MarkPaid was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkPaid.Lock()
	mock.calls.MarkPaid = append(mock.calls.MarkPaid, callInfo)
	mock.lockMarkPaid.Unlock()
	return mock.MarkPaidFunc(ctx, id)
}

func (mock *appRepoMock) MarkPaidCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkPaid.RLock()
	calls := mock.calls.MarkPaid
	mock.lockMarkPaid.RUnlock()
	return calls
}

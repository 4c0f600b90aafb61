package payment

import (
	"context"
	"sync"

	"github.com/scholarstream/scholarstream-backend/internal/adapter/provider/checkout"
)

var _ processor = &processorMock{}

type processorMock struct {
	CreateSessionFunc func(ctx context.Context, in checkout.CreateSessionInput) (*checkout.Session, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*checkout.Session, error)

	calls struct {
		CreateSession []struct {
			Ctx context.Context
			In  checkout.CreateSessionInput
		}
		GetSession []struct {
			Ctx       context.Context
			SessionID string
		}
	}
	lockCreateSession sync.RWMutex
	lockGetSession    sync.RWMutex
}

func (mock *processorMock) CreateSession(ctx context.Context, in checkout.CreateSessionInput) (*checkout.Session, error) {
	if mock.CreateSessionFunc == nil {
		panic("processorMock.CreateSessionFunc: method is nil but processor.CreateSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  checkout.CreateSessionInput
	}{Ctx: ctx, In: in}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, callInfo)
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, in)
}

func (mock *processorMock) CreateSessionCalls() []struct {
	Ctx context.Context
	In  checkout.CreateSessionInput
} {
	mock.lockCreateSession.RLock()
	calls := mock.calls.CreateSession
	mock.lockCreateSession.RUnlock()
	return calls
}

func (mock *processorMock) GetSession(ctx context.Context, sessionID string) (*checkout.Session, error) {
	if mock.GetSessionFunc == nil {
		panic("processorMock.GetSessionFunc: method is nil but processor.GetSession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, sessionID)
}

func (mock *processorMock) GetSessionCalls() []struct {
	Ctx       context.Context
	SessionID string
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

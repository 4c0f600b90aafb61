package middleware

import (
	"context"
	"sync"

	"github.com/scholarstream/scholarstream-backend/internal/auth"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyFunc func(ctx context.Context, rawToken string) (*auth.Principal, error)

	calls struct {
		Verify []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *tokenVerifierMock) Verify(ctx context.Context, rawToken string) (*auth.Principal, error) {
	if mock.VerifyFunc == nil {
		panic("tokenVerifierMock.VerifyFunc: method is nil but tokenVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, rawToken)
}

func (mock *tokenVerifierMock) VerifyCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

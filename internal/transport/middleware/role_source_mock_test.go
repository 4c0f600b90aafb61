package middleware

import (
	"context"
	"sync"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

var _ roleSource = &roleSourceMock{}

type roleSourceMock struct {
	RoleByEmailFunc func(ctx context.Context, email string) (domain.Role, error)

	calls struct {
		RoleByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockRoleByEmail sync.RWMutex
}

func (mock *roleSourceMock) RoleByEmail(ctx context.Context, email string) (domain.Role, error) {
	if mock.RoleByEmailFunc == nil {
		panic("roleSourceMock.RoleByEmailFunc: method is nil but roleSource.RoleByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockRoleByEmail.Lock()
	mock.calls.RoleByEmail = append(mock.calls.RoleByEmail, callInfo)
	mock.lockRoleByEmail.Unlock()
	return mock.RoleByEmailFunc(ctx, email)
}

func (mock *roleSourceMock) RoleByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockRoleByEmail.RLock()
	calls := mock.calls.RoleByEmail
	mock.lockRoleByEmail.RUnlock()
	return calls
}

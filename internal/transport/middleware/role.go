package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/pkg/ctxutil"
)

// roleSource resolves the persisted role of a principal. Roles are always
// read from the store at request time so a role change takes effect
// immediately, not at next sign-in.
//
//go:generate moq -rm -out role_source_mock_test.go . roleSource
type roleSource interface {
	RoleByEmail(ctx context.Context, email string) (domain.Role, error)
}

// RequireRole admits only principals whose persisted role is one of the
// allowed ones. Must sit downstream of Auth.
func RequireRole(roles roleSource, log *slog.Logger, allowed ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := ctxutil.UserEmailFromCtx(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			role, err := roles.RoleByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Verified token but no account on record: the principal
					// never registered, so no role can admit them.
					respondError(w, http.StatusForbidden, "no account for principal")
					return
				}
				log.ErrorContext(r.Context(), "role lookup failed", slog.String("error", err.Error()))
				respondError(w, http.StatusInternalServerError, "internal error")
				return
			}

			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			respondError(w, http.StatusForbidden, "insufficient role")
		})
	}
}

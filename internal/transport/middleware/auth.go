package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/scholarstream/scholarstream-backend/internal/auth"
	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/pkg/ctxutil"
)

// tokenVerifier checks a raw bearer token and returns the verified principal.
//
//go:generate moq -rm -out token_verifier_mock_test.go . tokenVerifier
type tokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*auth.Principal, error)
}

// Auth rejects requests without a valid bearer token and stores the verified
// email in the request context. Anything downstream of this middleware can
// rely on ctxutil.UserEmailFromCtx succeeding.
func Auth(verifier tokenVerifier, log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			principal, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUpstreamUnavailable) {
					log.ErrorContext(r.Context(), "identity provider unreachable", slog.String("error", err.Error()))
					respondError(w, http.StatusServiceUnavailable, "identity provider unavailable")
					return
				}
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := ctxutil.WithUserEmail(r.Context(), principal.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

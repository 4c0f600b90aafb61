package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID takes the inbound request id or mints one, stores it in the
// context and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := ctxutil.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/pkg/ctxutil"
)

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

// principalEmail returns the verified email placed in the context by the auth
// middleware.
func principalEmail(r *http.Request) (string, error) {
	email, ok := ctxutil.UserEmailFromCtx(r.Context())
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return email, nil
}

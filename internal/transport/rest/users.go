package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/internal/service/user"
)

// userService defines the user operations needed by the handler.
type userService interface {
	Register(ctx context.Context, input user.RegisterInput) (*user.RegisterResult, error)
	List(ctx context.Context) ([]domain.User, error)
	RoleByEmail(ctx context.Context, email string) (domain.Role, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler serves the user endpoints.
type UserHandler struct {
	log   *slog.Logger
	users userService
}

// NewUserHandler creates a user handler.
func NewUserHandler(logger *slog.Logger, users userService) *UserHandler {
	return &UserHandler{
		log:   logger.With("handler", "user"),
		users: users,
	}
}

type userResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	RegistrationDate time.Time `json:"registrationDate"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role.String(),
		RegistrationDate: u.RegistrationDate,
	}
}

type registerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Register handles POST /users. Registering an existing email is a non-failing
// no-op returning the stored record.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.users.Register(r.Context(), user.RegisterInput{Email: req.Email, Name: req.Name})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toUserResponse(res.User))
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Role handles GET /users/{email}/role.
func (h *UserHandler) Role(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	role, err := h.users.RoleByEmail(r.Context(), email)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"role": role.String()})
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole handles PATCH /users/{id}/role.
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req changeRoleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.users.ChangeRole(r.Context(), id, domain.Role(req.Role)); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

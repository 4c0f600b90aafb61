package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/internal/service/application"
)

// applicationService defines the application operations needed by the handler.
type applicationService interface {
	Submit(ctx context.Context, actorEmail string, input application.SubmitInput) (*domain.Application, error)
	Get(ctx context.Context, actorEmail string, id uuid.UUID) (*domain.Application, error)
	ListMine(ctx context.Context, actorEmail string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	UpdateContact(ctx context.Context, actorEmail string, id uuid.UUID, input application.ContactInput) error
	Moderate(ctx context.Context, id uuid.UUID, input application.ModerationInput) error
	Delete(ctx context.Context, actorEmail string, id uuid.UUID) error
}

// ApplicationHandler serves the application endpoints.
type ApplicationHandler struct {
	log  *slog.Logger
	apps applicationService
}

// NewApplicationHandler creates an application handler.
func NewApplicationHandler(logger *slog.Logger, apps applicationService) *ApplicationHandler {
	return &ApplicationHandler{
		log:  logger.With("handler", "application"),
		apps: apps,
	}
}

type applicationResponse struct {
	ID                uuid.UUID `json:"id"`
	UserEmail         string    `json:"userEmail"`
	ScholarshipID     uuid.UUID `json:"scholarshipId"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	ApplicationStatus string    `json:"applicationStatus"`
	PaymentStatus     string    `json:"paymentStatus"`
	Feedback          string    `json:"feedback"`
	ApplicationDate   time.Time `json:"applicationDate"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:                a.ID,
		UserEmail:         a.UserEmail,
		ScholarshipID:     a.ScholarshipID,
		Phone:             a.Phone,
		Address:           a.Address,
		ApplicationStatus: a.Status.String(),
		PaymentStatus:     a.PaymentStatus.String(),
		Feedback:          a.Feedback,
		ApplicationDate:   a.ApplicationDate,
	}
}

func toApplicationResponses(apps []domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i := range apps {
		out[i] = toApplicationResponse(&apps[i])
	}
	return out
}

type submitApplicationRequest struct {
	UserEmail     string    `json:"userEmail"`
	ScholarshipID uuid.UUID `json:"scholarshipId"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
}

// Submit handles POST /applications. The route is open, so the applicant
// email travels in the body.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	if email == "" {
		writeError(w, r, h.log, domain.NewValidationError("userEmail", "is required"))
		return
	}

	created, err := h.apps.Submit(r.Context(), email, application.SubmitInput{
		ScholarshipID: req.ScholarshipID,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(created))
}

// ListMine handles GET /applications. The optional email query must match the
// principal; the listing is always scoped to the caller's own applications.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, err := principalEmail(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if q := r.URL.Query().Get("email"); q != "" && !strings.EqualFold(q, email) {
		writeError(w, r, h.log, domain.ErrForbidden)
		return
	}

	apps, err := h.apps.ListMine(r.Context(), email)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponses(apps))
}

// ListAll handles GET /all-applications.
func (h *ApplicationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.ListAll(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponses(apps))
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, err := principalEmail(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	app, err := h.apps.Get(r.Context(), email, id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

type updateContactRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateContact handles PATCH /applications/{id}.
func (h *ApplicationHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	email, err := principalEmail(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updateContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	err = h.apps.UpdateContact(r.Context(), email, id, application.ContactInput{
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moderateRequest struct {
	ApplicationStatus *string `json:"applicationStatus"`
	Feedback          *string `json:"feedback"`
}

// Moderate handles PATCH /applications/moderator/{id}. Absent fields are left
// untouched.
func (h *ApplicationHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req moderateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := application.ModerationInput{Feedback: req.Feedback}
	if req.ApplicationStatus != nil {
		status := domain.ApplicationStatus(*req.ApplicationStatus)
		input.Status = &status
	}

	if err := h.apps.Moderate(r.Context(), id, input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, err := principalEmail(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.apps.Delete(r.Context(), email, id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

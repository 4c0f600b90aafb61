package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/internal/service/payment"
)

// paymentService defines the payment operations needed by the handler.
type paymentService interface {
	CreateSession(ctx context.Context, input payment.CreateSessionInput) (*payment.SessionResult, error)
	ConfirmSession(ctx context.Context, sessionID string) (*payment.ConfirmResult, error)
}

// PaymentHandler serves the checkout endpoints.
type PaymentHandler struct {
	log      *slog.Logger
	payments paymentService
}

// NewPaymentHandler creates a payment handler.
func NewPaymentHandler(logger *slog.Logger, payments paymentService) *PaymentHandler {
	return &PaymentHandler{
		log:      logger.With("handler", "payment"),
		payments: payments,
	}
}

type createSessionRequest struct {
	ApplicationID   uuid.UUID `json:"applicationId"`
	UserEmail       string    `json:"userEmail"`
	UserName        string    `json:"userName"`
	UniversityName  string    `json:"universityName"`
	ScholarshipName string    `json:"scholarshipName"`
	Amount          string    `json:"amount"`
}

type createSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CreateSession handles POST /create-checkout-session.
func (h *PaymentHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.payments.CreateSession(r.Context(), payment.CreateSessionInput{
		ApplicationID:   req.ApplicationID,
		UserEmail:       req.UserEmail,
		UserName:        req.UserName,
		UniversityName:  req.UniversityName,
		ScholarshipName: req.ScholarshipName,
		Amount:          req.Amount,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, createSessionResponse{SessionID: res.SessionID, URL: res.URL})
}

type confirmSessionResponse struct {
	Paid          bool   `json:"paid"`
	ApplicationID string `json:"applicationId,omitempty"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// ConfirmSession handles PATCH /payment-success. Repeating the call for an
// already reconciled session succeeds with modifiedCount 0.
func (h *PaymentHandler) ConfirmSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, r, h.log, domain.NewValidationError("session_id", "is required"))
		return
	}

	res, err := h.payments.ConfirmSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := confirmSessionResponse{Paid: res.Paid, ModifiedCount: res.ModifiedCount}
	if res.ApplicationID != uuid.Nil {
		out.ApplicationID = res.ApplicationID.String()
	}
	writeJSON(w, http.StatusOK, out)
}

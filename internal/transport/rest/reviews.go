package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/internal/service/review"
)

// reviewService defines the review operations needed by the handler.
type reviewService interface {
	Create(ctx context.Context, authorEmail string, input review.CreateInput) (*domain.Review, error)
	ListByScholarship(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Review, error)
	ListByUser(ctx context.Context, email string) ([]domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, actorEmail string, id uuid.UUID, input review.UpdateInput) error
	Delete(ctx context.Context, actorEmail string, id uuid.UUID) error
}

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	log     *slog.Logger
	reviews reviewService
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(logger *slog.Logger, reviews reviewService) *ReviewHandler {
	return &ReviewHandler{
		log:     logger.With("handler", "review"),
		reviews: reviews,
	}
}

type reviewResponse struct {
	ID            uuid.UUID `json:"id"`
	ScholarshipID uuid.UUID `json:"scholarshipId"`
	UserEmail     string    `json:"userEmail"`
	ReviewComment string    `json:"reviewComment"`
	RatingPoint   int       `json:"ratingPoint"`
	ReviewDate    time.Time `json:"reviewDate"`
}

func toReviewResponse(rv *domain.Review) reviewResponse {
	return reviewResponse{
		ID:            rv.ID,
		ScholarshipID: rv.ScholarshipID,
		UserEmail:     rv.UserEmail,
		ReviewComment: rv.ReviewComment,
		RatingPoint:   rv.RatingPoint,
		ReviewDate:    rv.ReviewDate,
	}
}

func toReviewResponses(reviews []domain.Review) []reviewResponse {
	out := make([]reviewResponse, len(reviews))
	for i := range reviews {
		out[i] = toReviewResponse(&reviews[i])
	}
	return out
}

type createReviewRequest struct {
	ScholarshipID uuid.UUID `json:"scholarshipId"`
	UserEmail     string    `json:"userEmail"`
	ReviewComment string    `json:"reviewComment"`
	RatingPoint   int       `json:"ratingPoint"`
}

// Create handles POST /reviews. The route is open, so the author email
// travels in the body.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	if email == "" {
		writeError(w, r, h.log, domain.NewValidationError("userEmail", "is required"))
		return
	}

	created, err := h.reviews.Create(r.Context(), email, review.CreateInput{
		ScholarshipID: req.ScholarshipID,
		Comment:       req.ReviewComment,
		Rating:        req.RatingPoint,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(created))
}

// ListByScholarship handles GET /reviews?scholarshipId=.
func (h *ReviewHandler) ListByScholarship(w http.ResponseWriter, r *http.Request) {
	scholarshipID, err := uuid.Parse(r.URL.Query().Get("scholarshipId"))
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("scholarshipId", "must be a valid UUID"))
		return
	}

	reviews, err := h.reviews.ListByScholarship(r.Context(), scholarshipID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// ListMine handles GET /user-reviews. The optional email query must match the
// principal.
func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, err := principalEmail(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if q := r.URL.Query().Get("email"); q != "" && !strings.EqualFold(q, email) {
		writeError(w, r, h.log, domain.ErrForbidden)
		return
	}

	reviews, err := h.reviews.ListByUser(r.Context(), email)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// ListAll handles GET /all-reviews.
func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAll(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

type updateReviewRequest struct {
	ReviewComment string `json:"reviewComment"`
	RatingPoint   int    `json:"ratingPoint"`
}

// Update handles PATCH /reviews/{id}.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	err = h.reviews.Update(r.Context(), email, id, review.UpdateInput{
		Comment: req.ReviewComment,
		Rating:  req.RatingPoint,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /reviews/{id}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.reviews.Delete(r.Context(), email, id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

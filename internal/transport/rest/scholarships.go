package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/internal/service/scholarship"
)

// featuredLimit caps the default scholarship listing; the full catalog lives
// on its own route.
const featuredLimit = 6

// scholarshipService defines the scholarship operations needed by the handler.
type scholarshipService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
	List(ctx context.Context, limit int) ([]domain.Scholarship, error)
	Create(ctx context.Context, input scholarship.CreateInput) (*domain.Scholarship, error)
	Update(ctx context.Context, id uuid.UUID, input scholarship.UpdateInput) (*domain.Scholarship, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScholarshipHandler serves the scholarship endpoints.
type ScholarshipHandler struct {
	log          *slog.Logger
	scholarships scholarshipService
}

// NewScholarshipHandler creates a scholarship handler.
func NewScholarshipHandler(logger *slog.Logger, scholarships scholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{
		log:          logger.With("handler", "scholarship"),
		scholarships: scholarships,
	}
}

type scholarshipResponse struct {
	ID                  uuid.UUID `json:"id"`
	UniversityName      string    `json:"universityName"`
	ScholarshipName     string    `json:"scholarshipName"`
	Category            string    `json:"category"`
	Degree              string    `json:"degree"`
	ApplicationFees     int64     `json:"applicationFees"`
	Description         string    `json:"description"`
	ScholarshipPostDate time.Time `json:"scholarshipPostDate"`
}

func toScholarshipResponse(s *domain.Scholarship) scholarshipResponse {
	return scholarshipResponse{
		ID:                  s.ID,
		UniversityName:      s.UniversityName,
		ScholarshipName:     s.ScholarshipName,
		Category:            s.Category,
		Degree:              s.Degree,
		ApplicationFees:     s.ApplicationFees,
		Description:         s.Description,
		ScholarshipPostDate: s.ScholarshipPostDate,
	}
}

func toScholarshipResponses(scholarships []domain.Scholarship) []scholarshipResponse {
	out := make([]scholarshipResponse, len(scholarships))
	for i := range scholarships {
		out[i] = toScholarshipResponse(&scholarships[i])
	}
	return out
}

type createScholarshipRequest struct {
	UniversityName  string `json:"universityName"`
	ScholarshipName string `json:"scholarshipName"`
	Category        string `json:"category"`
	Degree          string `json:"degree"`
	ApplicationFees int64  `json:"applicationFees"`
	Description     string `json:"description"`
}

// Create handles POST /scholarships.
func (h *ScholarshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createScholarshipRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	created, err := h.scholarships.Create(r.Context(), scholarship.CreateInput{
		UniversityName:  req.UniversityName,
		ScholarshipName: req.ScholarshipName,
		Category:        req.Category,
		Degree:          req.Degree,
		ApplicationFees: req.ApplicationFees,
		Description:     req.Description,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toScholarshipResponse(created))
}

// ListFeatured handles GET /scholarships.
func (h *ScholarshipHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	scholarships, err := h.scholarships.List(r.Context(), featuredLimit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScholarshipResponses(scholarships))
}

// ListAll handles GET /all-scholarships.
func (h *ScholarshipHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	scholarships, err := h.scholarships.List(r.Context(), 0)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScholarshipResponses(scholarships))
}

// Get handles GET /scholarships/{id}.
func (h *ScholarshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	sch, err := h.scholarships.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScholarshipResponse(sch))
}

type updateScholarshipRequest struct {
	UniversityName  *string `json:"universityName"`
	ScholarshipName *string `json:"scholarshipName"`
	Category        *string `json:"category"`
	Degree          *string `json:"degree"`
	ApplicationFees *int64  `json:"applicationFees"`
	Description     *string `json:"description"`
}

// Update handles PATCH /scholarships/{id}.
func (h *ScholarshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updateScholarshipRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	updated, err := h.scholarships.Update(r.Context(), id, scholarship.UpdateInput{
		UniversityName:  req.UniversityName,
		ScholarshipName: req.ScholarshipName,
		Category:        req.Category,
		Degree:          req.Degree,
		ApplicationFees: req.ApplicationFees,
		Description:     req.Description,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScholarshipResponse(updated))
}

// Delete handles DELETE /scholarships/{id}.
func (h *ScholarshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.scholarships.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

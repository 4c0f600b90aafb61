package review

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// CreateInput is the payload for publishing a review.
type CreateInput struct {
	ScholarshipID uuid.UUID
	Comment       string
	Rating        int
}

// Normalize trims whitespace from the comment.
func (in *CreateInput) Normalize() {
	in.Comment = strings.TrimSpace(in.Comment)
}

// Validate checks required fields and the rating range.
func (in CreateInput) Validate() error {
	var errs []domain.FieldError
	if in.ScholarshipID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "scholarship_id", Message: "is required"})
	}
	if in.Rating < 1 || in.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating_point", Message: "must be between 1 and 5"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput is the payload for editing a review.
type UpdateInput struct {
	Comment string
	Rating  int
}

// Normalize trims whitespace from the comment.
func (in *UpdateInput) Normalize() {
	in.Comment = strings.TrimSpace(in.Comment)
}

// Validate checks the rating range.
func (in UpdateInput) Validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return domain.NewValidationError("rating_point", "must be between 1 and 5")
	}
	return nil
}

package application

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// SubmitInput is the payload for submitting an application.
type SubmitInput struct {
	ScholarshipID uuid.UUID
	Phone         string
	Address       string
}

// Normalize trims whitespace from the contact fields.
func (in *SubmitInput) Normalize() {
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
}

// Validate checks required fields.
func (in SubmitInput) Validate() error {
	var errs []domain.FieldError
	if in.ScholarshipID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "scholarship_id", Message: "is required"})
	}
	if in.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "is required"})
	}
	if in.Address == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ContactInput is the payload for editing an application's contact fields.
type ContactInput struct {
	Phone   string
	Address string
}

// Normalize trims whitespace from both fields.
func (in *ContactInput) Normalize() {
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
}

// Validate checks required fields.
func (in ContactInput) Validate() error {
	var errs []domain.FieldError
	if in.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "is required"})
	}
	if in.Address == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ModerationInput is the payload for a partial moderator update.
// Nil fields are left unchanged.
type ModerationInput struct {
	Status   *domain.ApplicationStatus
	Feedback *string
}

// IsEmpty reports whether no field is set.
func (in ModerationInput) IsEmpty() bool {
	return in.Status == nil && in.Feedback == nil
}

// Validate checks the set fields.
func (in ModerationInput) Validate() error {
	if in.Status != nil && !in.Status.IsValid() {
		return domain.NewValidationError("application_status", "unknown status "+in.Status.String())
	}
	return nil
}

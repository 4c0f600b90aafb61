package scholarship

import (
	"strings"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// CreateInput is the payload for publishing a scholarship.
// ApplicationFees is in minor currency units.
type CreateInput struct {
	UniversityName  string
	ScholarshipName string
	Category        string
	Degree          string
	ApplicationFees int64
	Description     string
}

// Normalize trims whitespace from all text fields.
func (in *CreateInput) Normalize() {
	in.UniversityName = strings.TrimSpace(in.UniversityName)
	in.ScholarshipName = strings.TrimSpace(in.ScholarshipName)
	in.Category = strings.TrimSpace(in.Category)
	in.Degree = strings.TrimSpace(in.Degree)
	in.Description = strings.TrimSpace(in.Description)
}

// Validate checks required fields.
func (in CreateInput) Validate() error {
	var errs []domain.FieldError
	if in.UniversityName == "" {
		errs = append(errs, domain.FieldError{Field: "university_name", Message: "is required"})
	}
	if in.ScholarshipName == "" {
		errs = append(errs, domain.FieldError{Field: "scholarship_name", Message: "is required"})
	}
	if in.ApplicationFees < 0 {
		errs = append(errs, domain.FieldError{Field: "application_fees", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput is the payload for a partial scholarship update.
// Nil fields are left unchanged.
type UpdateInput struct {
	UniversityName  *string
	ScholarshipName *string
	Category        *string
	Degree          *string
	ApplicationFees *int64
	Description     *string
}

// Validate checks the set fields.
func (in UpdateInput) Validate() error {
	var errs []domain.FieldError
	if in.UniversityName != nil && strings.TrimSpace(*in.UniversityName) == "" {
		errs = append(errs, domain.FieldError{Field: "university_name", Message: "must not be blank"})
	}
	if in.ScholarshipName != nil && strings.TrimSpace(*in.ScholarshipName) == "" {
		errs = append(errs, domain.FieldError{Field: "scholarship_name", Message: "must not be blank"})
	}
	if in.ApplicationFees != nil && *in.ApplicationFees < 0 {
		errs = append(errs, domain.FieldError{Field: "application_fees", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Fields converts the input to the repository's update set.
func (in UpdateInput) Fields() domain.ScholarshipUpdate {
	return domain.ScholarshipUpdate{
		UniversityName:  in.UniversityName,
		ScholarshipName: in.ScholarshipName,
		Category:        in.Category,
		Degree:          in.Degree,
		ApplicationFees: in.ApplicationFees,
		Description:     in.Description,
	}
}

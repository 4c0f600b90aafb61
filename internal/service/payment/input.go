package payment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// CreateSessionInput is the payload for creating a checkout session.
// Amount is in major currency units as a decimal string, e.g. "50.00".
type CreateSessionInput struct {
	ApplicationID   uuid.UUID
	UserEmail       string
	UserName        string
	UniversityName  string
	ScholarshipName string
	Amount          string
}

// Normalize trims whitespace from all text fields.
func (in *CreateSessionInput) Normalize() {
	in.UserEmail = strings.ToLower(strings.TrimSpace(in.UserEmail))
	in.UserName = strings.TrimSpace(in.UserName)
	in.UniversityName = strings.TrimSpace(in.UniversityName)
	in.ScholarshipName = strings.TrimSpace(in.ScholarshipName)
	in.Amount = strings.TrimSpace(in.Amount)
}

// Validate checks required fields. The amount format is checked separately by
// parseAmountMinor.
func (in CreateSessionInput) Validate() error {
	var errs []domain.FieldError
	if in.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "is required"})
	}
	if in.UserEmail == "" {
		errs = append(errs, domain.FieldError{Field: "user_email", Message: "is required"})
	}
	if in.ScholarshipName == "" {
		errs = append(errs, domain.FieldError{Field: "scholarship_name", Message: "is required"})
	}
	if in.Amount == "" {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// parseAmountMinor converts a major-unit decimal string to minor units using
// integer arithmetic only: "50" and "50.0" and "50.00" all become 5000.
// More than two fraction digits, signs and any non-digit characters are
// rejected.
func parseAmountMinor(amount string) (int64, error) {
	invalid := func() (int64, error) {
		return 0, domain.NewValidationError("amount", "must be a positive decimal like 50.00")
	}

	whole, frac, hasFrac := strings.Cut(amount, ".")
	if whole == "" || (hasFrac && frac == "") || len(frac) > 2 {
		return invalid()
	}

	var minor int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return invalid()
		}
		if minor > (1<<62)/1000 {
			return invalid()
		}
		minor = minor*10 + int64(c-'0')
	}

	minor *= 100
	scale := int64(10)
	for _, c := range frac {
		if c < '0' || c > '9' {
			return invalid()
		}
		minor += int64(c-'0') * scale
		scale /= 10
	}

	if minor <= 0 {
		return invalid()
	}
	return minor, nil
}

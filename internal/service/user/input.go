package user

import (
	"strings"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// RegisterInput is the self-registration payload.
type RegisterInput struct {
	Email string
	Name  string
}

// Normalize lowercases and trims the email and trims the name.
func (in *RegisterInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
}

// Validate checks required fields.
func (in RegisterInput) Validate() error {
	var errs []domain.FieldError
	if in.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "is required"})
	} else if !strings.Contains(in.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "is not a valid address"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

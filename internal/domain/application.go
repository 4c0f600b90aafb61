package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a student's submission against a scholarship. Its two state
// axes are independent: ApplicationStatus is owned by moderators,
// PaymentStatus is owned by payment reconciliation.
type Application struct {
	ID              uuid.UUID
	UserEmail       string
	ScholarshipID   uuid.UUID
	Phone           string
	Address         string
	Status          ApplicationStatus
	PaymentStatus   PaymentStatus
	Feedback        string
	ApplicationDate time.Time
}

// IsOwnedBy reports whether the application belongs to the given principal.
func (a *Application) IsOwnedBy(email string) bool {
	return a.UserEmail == email
}

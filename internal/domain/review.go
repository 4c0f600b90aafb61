package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a scholarship. ReviewDate is server-assigned
// and refreshed on every edit.
type Review struct {
	ID            uuid.UUID
	ScholarshipID uuid.UUID
	UserEmail     string
	ReviewComment string
	RatingPoint   int
	ReviewDate    time.Time
}

// IsOwnedBy reports whether the review was authored by the given principal.
func (r *Review) IsOwnedBy(email string) bool {
	return r.UserEmail == email
}

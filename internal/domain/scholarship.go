package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scholarship is a posting students can apply against.
// ApplicationFees is stored in minor currency units (cents).
type Scholarship struct {
	ID                  uuid.UUID
	UniversityName      string
	ScholarshipName     string
	Category            string
	Degree              string
	ApplicationFees     int64
	Description         string
	ScholarshipPostDate time.Time
}

// ScholarshipUpdate holds the optional fields of a partial scholarship update.
// Nil means "leave unchanged".
type ScholarshipUpdate struct {
	UniversityName  *string
	ScholarshipName *string
	Category        *string
	Degree          *string
	ApplicationFees *int64
	Description     *string
}

// IsEmpty reports whether no field is set.
func (u ScholarshipUpdate) IsEmpty() bool {
	return u.UniversityName == nil && u.ScholarshipName == nil && u.Category == nil &&
		u.Degree == nil && u.ApplicationFees == nil && u.Description == nil
}

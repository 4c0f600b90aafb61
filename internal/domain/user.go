package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a persisted account. Users are created on first
// self-registration with RoleStudent; only an Admin may change the role
// afterwards.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Role             Role
	RegistrationDate time.Time
}

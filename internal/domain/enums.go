package domain

// Role represents the authorization level of a user.
// Role is persisted on the User record and is never taken from a request.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleModerator Role = "Moderator"
	RoleAdmin     Role = "Admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// ApplicationStatus represents the moderation state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending    ApplicationStatus = "pending"
	ApplicationStatusProcessing ApplicationStatus = "processing"
	ApplicationStatusCompleted  ApplicationStatus = "completed"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusProcessing,
		ApplicationStatusCompleted, ApplicationStatusRejected:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an application.
// The only allowed transition is unpaid -> paid, applied exclusively by
// payment reconciliation.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid:
		return true
	}
	return false
}

// Package auth holds the request-scoped identity types shared between the
// identity provider adapter and the transport layer.
package auth

// Principal is a verified caller identity established by the external
// identity provider. It exists only for the duration of a request; the
// authorization role is always re-read from the persisted User record.
type Principal struct {
	Email string
	Name  string
}

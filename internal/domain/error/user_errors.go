package error

import "errors"

// User identity errors. Authentication happens upstream; the API only
// requires a valid user identity header on scoped routes.
var (
	// ErrMissingUserIdentity is returned when the user identity header is absent.
	ErrMissingUserIdentity = errors.New("missing user identity")

	// ErrInvalidUserIdentity is returned when the user identity header is not a valid UUID.
	ErrInvalidUserIdentity = errors.New("invalid user identity")
)

// UserErrorCode defines error codes for user identity errors.
type UserErrorCode string

const (
	ErrCodeMissingUserIdentity UserErrorCode = "USR-010001"
	ErrCodeInvalidUserIdentity UserErrorCode = "USR-010002"
)

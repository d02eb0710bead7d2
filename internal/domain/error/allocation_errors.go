package error

import "errors"

// Allocation domain errors. The engine itself never raises errors for
// degenerate inputs (empty goal lists, zero free cash); these cover the
// orchestration boundary around it.
var (
	// ErrInvalidFreeCash is returned when the free cash amount is negative.
	ErrInvalidFreeCash = errors.New("invalid free cash amount")

	// ErrInvalidWeight is returned when a caller-supplied weight is negative
	// or names an unknown scoring factor.
	ErrInvalidWeight = errors.New("invalid scoring weight")
)

// AllocationErrorCode defines error codes for allocation errors.
// Format: ALC-XXYYYY where XX is category and YYYY is specific error.
type AllocationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFreeCash AllocationErrorCode = "ALC-010001"
	ErrCodeInvalidWeight   AllocationErrorCode = "ALC-010002"
)

// AllocationError represents an allocation error with code and message.
type AllocationError struct {
	Code    AllocationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AllocationError) Unwrap() error {
	return e.Err
}

// NewAllocationError creates a new AllocationError with the given code and message.
func NewAllocationError(code AllocationErrorCode, message string, err error) *AllocationError {
	return &AllocationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

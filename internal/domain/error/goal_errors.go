// Package error defines domain-specific errors for the Goal Funding Planner.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalName is returned when the goal name is empty.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidTargetAmount is returned when the target amount is invalid (zero or negative).
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrUnauthorizedGoalAccess is returned when a user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrHintOutOfRange is returned when a normalized scoring hint falls outside [0, 1].
	ErrHintOutOfRange = errors.New("scoring hint out of range")

	// ErrNegativeRemaining is returned when a planning goal is built with a negative remaining amount.
	ErrNegativeRemaining = errors.New("negative remaining amount")

	// ErrNoGoalFieldsToUpdate is returned when a goal update carries no fields.
	ErrNoGoalFieldsToUpdate = errors.New("no fields to update")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalName        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010004"
	ErrCodeHintOutOfRange         GoalErrorCode = "GOL-010005"
	ErrCodeNegativeRemaining      GoalErrorCode = "GOL-010006"
	ErrCodeNoGoalFieldsToUpdate   GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

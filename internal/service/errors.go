// Package service provides business logic for the application.
package service

import "errors"

// Service errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrIncomeNotFound  = errors.New("income record not found")
	ErrExpenseNotFound = errors.New("expense record not found")
)

// ValidationError marks input rejected before any database access.
// Reason is safe to surface to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// validationError wraps a client-facing rejection reason.
func validationError(reason string) error {
	return &ValidationError{Reason: reason}
}

package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debits and credits do not match.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrBelowSalvage indicates that a depreciation run would push an asset's book
// value under its salvage value.
var ErrBelowSalvage = errors.New("book value would drop below salvage value")

// ErrConflict indicates that the operation conflicts with the current state of
// the resource (e.g. posting an already posted entry).
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrForbidden indicates that the authenticated user lacks the role required
// for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message that is safe to surface to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping cause.
func NewAppError(code int, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Err: cause}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

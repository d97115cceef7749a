package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken reports a duplicate username at signup.
	ErrUsernameTaken = errors.New("username must be unique")
	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// login failures. Callers must not be told which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrTokenInvalid covers missing, malformed, forged and expired bearer
	// tokens as a single credential-error class.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrMalformedID reports a path parameter that does not parse as an id.
	ErrMalformedID = errors.New("malformed id")
)

// ValidationError reports a schema constraint violation on a request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

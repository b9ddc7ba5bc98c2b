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

// ErrInvalidCredentials is returned for any failed login, whether the email is unknown or the
// password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken indicates a bearer token that is malformed, badly signed, expired or revoked.
var ErrInvalidToken = errors.New("invalid token")

// ErrForbidden indicates that the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrSelfDelete is returned when an admin tries to delete their own account.
var ErrSelfDelete = fmt.Errorf("cannot delete your own account: %w", ErrValidation)

// AppError carries an HTTP-ish status code alongside the wrapped cause. Repositories use it for
// store failures that should surface as 500s.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validationf builds a validation error with a human readable message that still matches
// ErrValidation under errors.Is.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidID indicates that an identifier is not a well-formed document id.
var ErrInvalidID = errors.New("invalid identifier")

// ErrInvalidCredentials is returned by login for both unknown users and bad passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken indicates a token that failed signature, claim or expiry checks,
// or a refresh token that no user currently holds.
var ErrInvalidToken = errors.New("invalid token")

// ErrUnauthorized indicates a request without usable credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller lacking the required role.
var ErrForbidden = errors.New("forbidden")

// ErrMissingInput indicates a required request value was absent.
var ErrMissingInput = errors.New("missing input")

// ErrInvalidTransition indicates an invoice status change that is not allowed.
var ErrInvalidTransition = errors.New("invalid status transition")

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError carries the HTTP status and user-facing message for a failure,
// wrapping one of the sentinel errors above.
type AppError struct {
	Status  int
	Message string
	Fields  []FieldError
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

// NewAppError builds an AppError with the given status, message and cause.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// NewValidationError builds a 400 AppError listing the offending fields.
func NewValidationError(fields ...FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
		Err:     ErrValidation,
	}
}

// NewFieldError is a shorthand for a validation error on one field.
func NewFieldError(field, message string) *AppError {
	return NewValidationError(FieldError{Field: field, Message: message})
}

// Resolve maps any error to the AppError that should be shown to the client.
// Unrecognized errors become a generic 500 so internal detail never leaks.
func Resolve(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewAppError(http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrValidation), errors.Is(err, ErrMissingInput),
		errors.Is(err, ErrInvalidTransition):
		return NewAppError(http.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, ErrDuplicate):
		return NewAppError(http.StatusBadRequest, "Resource already exists", err)
	case errors.Is(err, ErrInvalidCredentials):
		return NewAppError(http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrUnauthorized):
		return NewAppError(http.StatusUnauthorized, "Invalid token", err)
	case errors.Is(err, ErrForbidden):
		return NewAppError(http.StatusForbidden, "Access denied", err)
	default:
		return NewAppError(http.StatusInternalServerError, "Internal Server Error", err)
	}
}

package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the authentication flows. Message texts are part of the
// API contract: unknown email and wrong password share one text so responses
// cannot be used to enumerate accounts, while a deactivated account stays
// distinguishable.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrAccountDeactivated is returned when login hits an inactive account.
	ErrAccountDeactivated = errors.New("Account is deactivated. Please contact support.")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("User with this email already exists")
	// ErrWrongCurrentPassword is returned by change-password on a bad current password.
	ErrWrongCurrentPassword = errors.New("Current password is incorrect")
	// ErrUserNotFound is returned when a user record is absent.
	ErrUserNotFound = errors.New("User not found")
	// ErrNotFound is the generic absent-record error for collaborator resources.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries a client-facing message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a validation error with the given message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusFor maps a domain error to an HTTP status code. Unrecognized errors
// map to 500 so handlers never leak internals.
func StatusFor(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountDeactivated),
		errors.Is(err, ErrWrongCurrentPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Package apperr defines the typed error taxonomy surfaced by the API.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an API-visible failure carrying an HTTP status code.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// FromError extracts an *Error from err's chain, if present.
func FromError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewValidation reports missing or mismatched required input.
func NewValidation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewInvalidCredentials reports a failed login. The message is
// deliberately identical for an unknown email and a wrong password.
func NewInvalidCredentials() *Error {
	return &Error{Status: http.StatusUnauthorized, Message: "invalid email or password"}
}

// NewUnauthenticated reports a missing, invalid or expired session token.
func NewUnauthenticated(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewNotFound reports an absent record.
func NewNotFound(what string) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf("%s not found", what)}
}

// NewInvalidResetToken reports a reset token that does not match or
// has expired. The two cases are not distinguishable.
func NewInvalidResetToken() *Error {
	return &Error{Status: http.StatusBadRequest, Message: "reset token is invalid or has expired"}
}

// NewEmailTaken reports a registration against an existing email.
func NewEmailTaken(email string) *Error {
	return &Error{Status: http.StatusConflict, Message: fmt.Sprintf("email %s is already taken", email)}
}

// NewUpload reports a media storage failure.
func NewUpload(message string) *Error {
	return &Error{Status: http.StatusBadGateway, Message: message}
}

// NewMail reports a mail delivery failure.
func NewMail(message string) *Error {
	return &Error{Status: http.StatusBadGateway, Message: message}
}

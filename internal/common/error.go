// Package common defines sentinel errors and constants shared by the
// validation, repository, service and transport layers of courtbook.
// Callers should use errors.Is to match these values; the wrapped message
// is meant to be shown to the end user verbatim.
package common

import "errors"

var (
	// Validation errors (bad input shape or a business rule violation).
	ErrValidation = errors.New("validation error")

	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotAcknowledged = errors.New("write not acknowledged")

	// Service-level errors.
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("Either the email address or password is invalid")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

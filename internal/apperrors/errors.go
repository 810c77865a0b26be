package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated
// (unknown user, password mismatch, or an invalid/expired token).
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that an authenticated caller lacks a required role.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenRevoked indicates that a presented refresh token has been
// marked expired in the ledger and must not be honored again.
var ErrRefreshTokenRevoked = errors.New("refresh token revoked")

// ValidationError carries field-level validation messages. Handlers render it
// as a 400 response with a per-field error map.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// Package apperr defines the error taxonomy shared by services and HTTP
// handlers. Handlers map these sentinels to status codes; everything
// else is treated as an internal error.
package apperr

import "errors"

var (
	// ErrValidation marks a rejected request with a missing or malformed field.
	ErrValidation = errors.New("invalid request")

	// ErrUnauthorized marks a missing, invalid or expired credential.
	ErrUnauthorized = errors.New("authentication required")

	// ErrNotFound marks a referenced record that no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation, e.g. a duplicate email.
	ErrConflict = errors.New("already exists")

	// ErrStoreUnavailable marks a persistence failure with no local fallback.
	ErrStoreUnavailable = errors.New("store unavailable")
)

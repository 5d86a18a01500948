// Package apperr defines the portal's error taxonomy and its mapping to
// HTTP status codes. Handlers translate any error returned by a service
// through Status and send a uniform {"error": message} envelope.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized means the presented credentials did not resolve to a user.
	ErrUnauthorized = errors.New("Invalid credentials")
	// ErrForbidden means a non-administrator attempted an admin-only action.
	ErrForbidden = errors.New("Access denied. Admin only.")
	// ErrBadRequest means a required part of the request (e.g. a file) was missing.
	ErrBadRequest = errors.New("No file uploaded")
	// ErrConflict means a uniqueness invariant was violated (duplicate username).
	ErrConflict = errors.New("username already exists")
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
)

// StorageError wraps a persistence-layer failure. The underlying message is
// exposed to the client, matching the source system's behavior for an
// internal tool.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError. A nil err passes through unchanged.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}

// Storagef wraps a formatted persistence failure.
func Storagef(format string, args ...any) error {
	return &StorageError{Err: fmt.Errorf(format, args...)}
}

// Status maps a domain error to its HTTP status code. Unrecognized errors
// (including StorageError) map to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

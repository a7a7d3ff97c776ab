// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	// ErrInUse reports a delete blocked by rows that still reference the target.
	ErrInUse = errors.New("resource is still in use")
)

// ValidationError is a caller mistake; Message is safe to return verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// notFoundOr maps a missing row to ErrNotFound and wraps anything else.
func notFoundOr(err error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", action, err)
}

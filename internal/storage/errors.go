// ABOUTME: Error kinds surfaced by the storage layer.
// ABOUTME: Callers classify with errors.Is / errors.As at the interaction boundary.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a nonexistent record id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a malformed or missing required field.
// The operation is aborted with no partial write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnavailableError reports that the backing database file cannot be
// opened or created. The process may keep serving later interactions
// if the condition clears.
type UnavailableError struct {
	Path string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable at %s: %v", e.Path, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

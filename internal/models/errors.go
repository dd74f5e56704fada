package models

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched by every InvalidStateError.
var ErrInvalidState = errors.New("invalid state")

// ErrMenuNotFound is returned when a menu name is not in the store.
var ErrMenuNotFound = errors.New("menu not found")

// ValidationError reports a malformed user-supplied value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StorageError reports persisted data that could not be read or written.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// InvalidStateError reports an operation invoked in a state that forbids it.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidState) match.
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

package reconciler

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSchedule = errors.New("active schedule already exists for order")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrMissingIdentity   = errors.New("order identity is required")
)

// PersistenceError is a non-duplicate backend failure or timeout.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("schedule %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

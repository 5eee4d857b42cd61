package production

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingRequiredFields   = errors.New("missing required fields")
	ErrInvalidOrderRef         = errors.New("invalid order reference")
	ErrInvalidProductionStatus = errors.New("invalid production status")

	ErrOverrideNotFound      = errors.New("production override not found")
	ErrProductionNotComplete = errors.New("production not complete")
)

// NotCompleteError rejects a custom order scheduled before its completion date.
type NotCompleteError struct {
	RequestedDate  time.Time
	CompletionDate time.Time
	AdminSet       bool
}

func (e *NotCompleteError) Error() string {
	source := "default lead time"
	if e.AdminSet {
		source = "admin override"
	}
	return fmt.Sprintf("production not complete: requested %s, earliest %s (%s)",
		e.RequestedDate.Format(time.DateOnly),
		e.CompletionDate.Format(time.DateOnly),
		source,
	)
}

func (e *NotCompleteError) Is(target error) bool {
	return target == ErrProductionNotComplete
}

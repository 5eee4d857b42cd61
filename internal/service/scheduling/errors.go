package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/availability"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("requested date is not available")

	ErrMissingDeliveryDate = errors.New("delivery date is required")
	ErrDeliveryDateInPast  = errors.New("delivery date is in the past")
	ErrTimeSlotTooLong     = errors.New("time slot is too long")
	ErrNotesTooLong        = errors.New("notes are too long")
	ErrInvalidDateRange    = errors.New("date_from is after date_to")
	ErrInvalidStatus       = errors.New("unknown schedule status")
)

// ValidationError reports missing or malformed scheduling input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError carries every reason the date was rejected and the dates
// that would have been accepted instead.
type ConflictError struct {
	Date        time.Time
	Reasons     []availability.ConflictReason
	Suggestions []time.Time
}

func (e *ConflictError) Error() string {
	reasons := make([]string, len(e.Reasons))
	for i, reason := range e.Reasons {
		reasons[i] = reason.String()
	}
	return fmt.Sprintf("date %s not available: %s", e.Date.Format(time.DateOnly), strings.Join(reasons, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) HasReason(reason availability.ConflictReason) bool {
	for _, r := range e.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// PartialFailure is a secondary write that failed after the schedule itself
// was stored. It never affects the stored schedule.
type PartialFailure struct {
	Target entities.AggregateRef
	Err    error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("sync delivery status to %s %s: %v", e.Target.Kind, e.Target.ID, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}

type WarningCode string

const (
	WarningPersistenceDegraded WarningCode = "PERSISTENCE_DEGRADED"
	WarningStatusSyncFailed    WarningCode = "STATUS_SYNC_FAILED"
	WarningCalendarDegraded    WarningCode = "CALENDAR_DEGRADED"
	WarningSchedulesDegraded   WarningCode = "SCHEDULES_DEGRADED"
	WarningOverridesDegraded   WarningCode = "OVERRIDES_DEGRADED"
)

func (c WarningCode) String() string {
	return string(c)
}

type Warning struct {
	Code    WarningCode
	Message string
}

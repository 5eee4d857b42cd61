package scheduling

import (
	"time"

	"fulfillment/internal/entities"
)

const (
	maxTimeSlotLength = 32
	maxNotesLength    = 1000
)

func validateScheduleData(data ScheduleData, now time.Time) error {
	if data.Date.IsZero() {
		return &ValidationError{Field: "delivery_date", Err: ErrMissingDeliveryDate}
	}
	if entities.Day(data.Date).Before(entities.Day(now)) {
		return &ValidationError{Field: "delivery_date", Err: ErrDeliveryDateInPast}
	}
	if len(data.TimeSlot) > maxTimeSlotLength {
		return &ValidationError{Field: "time_slot", Err: ErrTimeSlotTooLong}
	}
	if len(data.Notes) > maxNotesLength {
		return &ValidationError{Field: "notes", Err: ErrNotesTooLong}
	}
	return nil
}

func validateFilter(filter entities.ScheduleFilter) error {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return &ValidationError{Field: "date_to", Err: ErrInvalidDateRange}
	}
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return &ValidationError{Field: "status", Err: ErrInvalidStatus}
	}
	return nil
}

func isValidStatus(status entities.ScheduleStatus) bool {
	switch status {
	case entities.ScheduleScheduled,
		entities.ScheduleInTransit,
		entities.ScheduleDelivered,
		entities.ScheduleDelayed,
		entities.ScheduleCancelled:
		return true
	default:
		return false
	}
}

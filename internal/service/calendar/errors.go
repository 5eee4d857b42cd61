package calendar

import "errors"

var (
	ErrMissingDate     = errors.New("date is required")
	ErrInvalidCapacity = errors.New("max deliveries must not be negative")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrRangeTooLong    = errors.New("date range too long")

	ErrDayNotFound = errors.New("calendar day not found")
)

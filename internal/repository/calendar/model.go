package calendar

import "time"

type CalendarDayDB struct {
	Date              time.Time
	IsAvailable       bool
	MaxDeliveries     int
	CurrentDeliveries int
	MorningSlot       bool
	AfternoonSlot     bool
	EveningSlot       bool
	IsHoliday         bool
	IsBlackout        bool
	Notes             string
	UpdatedAt         *time.Time
}

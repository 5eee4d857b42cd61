package entities

import "time"

type CalendarDay struct {
	Date              time.Time
	IsAvailable       bool
	MaxDeliveries     int
	CurrentDeliveries int // derived from schedules, informational only
	MorningSlot       bool
	AfternoonSlot     bool
	EveningSlot       bool
	IsHoliday         bool
	IsBlackout        bool
	Notes             string
	UpdatedAt         time.Time
}

func (d CalendarDay) IsBookable() bool {
	return d.IsAvailable && !d.IsHoliday && !d.IsBlackout
}

func DefaultCalendarDay(date time.Time, capacity int) CalendarDay {
	return CalendarDay{
		Date:          Day(date),
		IsAvailable:   true,
		MaxDeliveries: capacity,
		MorningSlot:   true,
		AfternoonSlot: true,
		EveningSlot:   true,
	}
}

type SlotPeriod string

const (
	SlotMorning   SlotPeriod = "morning"
	SlotAfternoon SlotPeriod = "afternoon"
	SlotEvening   SlotPeriod = "evening"
)

func (d CalendarDay) SlotAvailable(period SlotPeriod) bool {
	switch period {
	case SlotMorning:
		return d.MorningSlot
	case SlotAfternoon:
		return d.AfternoonSlot
	case SlotEvening:
		return d.EveningSlot
	default:
		return true
	}
}

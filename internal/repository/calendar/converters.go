package calendar

import (
	"fulfillment/internal/entities"
)

func ToDomain(d *CalendarDayDB) *entities.CalendarDay {
	if d == nil {
		return nil
	}

	day := &entities.CalendarDay{
		Date:              entities.Day(d.Date),
		IsAvailable:       d.IsAvailable,
		MaxDeliveries:     d.MaxDeliveries,
		CurrentDeliveries: d.CurrentDeliveries,
		MorningSlot:       d.MorningSlot,
		AfternoonSlot:     d.AfternoonSlot,
		EveningSlot:       d.EveningSlot,
		IsHoliday:         d.IsHoliday,
		IsBlackout:        d.IsBlackout,
		Notes:             d.Notes,
	}
	if d.UpdatedAt != nil {
		day.UpdatedAt = *d.UpdatedAt
	}
	return day
}

func FromDomain(d *entities.CalendarDay) *CalendarDayDB {
	if d == nil {
		return nil
	}
	return &CalendarDayDB{
		Date:          entities.Day(d.Date),
		IsAvailable:   d.IsAvailable,
		MaxDeliveries: d.MaxDeliveries,
		MorningSlot:   d.MorningSlot,
		AfternoonSlot: d.AfternoonSlot,
		EveningSlot:   d.EveningSlot,
		IsHoliday:     d.IsHoliday,
		IsBlackout:    d.IsBlackout,
		Notes:         d.Notes,
	}
}

func ToDomainList(daysDB []CalendarDayDB) []entities.CalendarDay {
	if len(daysDB) == 0 {
		return []entities.CalendarDay{}
	}

	result := make([]entities.CalendarDay, len(daysDB))
	for i, dayDB := range daysDB {
		result[i] = *ToDomain(&dayDB)
	}
	return result
}

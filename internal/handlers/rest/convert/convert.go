// Package convert maps domain entities onto the HTTP DTOs shared by
// several handlers.
package convert

import (
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

func Schedule(schedule entities.DeliverySchedule) dto.DeliverySchedule {
	return dto.DeliverySchedule{
		Id:             schedule.ID,
		OrderId:        schedule.Identity.OrderID,
		OrderType:      schedule.Identity.OrderType.String(),
		OrderNumber:    schedule.OrderNumber,
		CustomerId:     schedule.CustomerID,
		DeliveryDate:   schedule.DeliveryDate.Format(time.DateOnly),
		TimeSlot:       schedule.TimeSlot,
		Status:         schedule.Status.String(),
		Address:        Address(schedule.Address),
		Notes:          Optional(schedule.Notes),
		TrackingNumber: schedule.TrackingNumber,
		PriorityLevel:  schedule.PriorityLevel.String(),
		DeliveryFee:    schedule.DeliveryFee,
		CreatedAt:      schedule.CreatedAt,
		UpdatedAt:      schedule.UpdatedAt,
		Synced:         schedule.Synced,
	}
}

func Schedules(schedules []entities.DeliverySchedule) []dto.DeliverySchedule {
	out := make([]dto.DeliverySchedule, len(schedules))
	for i, schedule := range schedules {
		out[i] = Schedule(schedule)
	}
	return out
}

func Address(profile entities.ShippingProfile) dto.ShippingAddress {
	return dto.ShippingAddress{
		Address:      profile.Address,
		City:         Optional(profile.City),
		PostalCode:   Optional(profile.PostalCode),
		Province:     Optional(profile.Province),
		ContactPhone: Optional(profile.ContactPhone),
		Email:        Optional(profile.Email),
	}
}

func CalendarDay(day entities.CalendarDay) dto.CalendarDay {
	return dto.CalendarDay{
		Date:              day.Date.Format(time.DateOnly),
		IsAvailable:       day.IsAvailable,
		MaxDeliveries:     day.MaxDeliveries,
		CurrentDeliveries: day.CurrentDeliveries,
		MorningSlot:       day.MorningSlot,
		AfternoonSlot:     day.AfternoonSlot,
		EveningSlot:       day.EveningSlot,
		IsHoliday:         day.IsHoliday,
		IsBlackout:        day.IsBlackout,
		Notes:             Optional(day.Notes),
	}
}

// Optional maps the empty string onto an omitted JSON field.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Date parses a YYYY-MM-DD value. An empty string yields nil.
func Date(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

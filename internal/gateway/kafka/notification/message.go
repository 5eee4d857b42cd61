package notification

import (
	"time"

	"fulfillment/internal/entities"
)

const eventDeliveryScheduled = "delivery.scheduled"

type contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type scheduleSummary struct {
	OrderNumber    string  `json:"order_number"`
	OrderType      string  `json:"order_type"`
	DeliveryDate   string  `json:"delivery_date"`
	TimeSlot       string  `json:"time_slot"`
	Status         string  `json:"status"`
	TrackingNumber string  `json:"tracking_number"`
	Address        string  `json:"address"`
	City           string  `json:"city,omitempty"`
	DeliveryFee    float64 `json:"delivery_fee"`
	Notes          string  `json:"notes,omitempty"`
}

type message struct {
	Event    string          `json:"event"`
	SentAt   time.Time       `json:"sent_at"`
	Contact  contact         `json:"contact"`
	Schedule scheduleSummary `json:"schedule"`
}

func newMessage(profile entities.ShippingProfile, schedule entities.DeliverySchedule, now time.Time) message {
	return message{
		Event:  eventDeliveryScheduled,
		SentAt: now,
		Contact: contact{
			Name:  profile.CustomerName,
			Email: profile.Email,
			Phone: profile.ContactPhone,
		},
		Schedule: scheduleSummary{
			OrderNumber:    schedule.OrderNumber,
			OrderType:      schedule.Identity.OrderType.String(),
			DeliveryDate:   schedule.DeliveryDate.Format(time.DateOnly),
			TimeSlot:       schedule.TimeSlot,
			Status:         schedule.Status.String(),
			TrackingNumber: schedule.TrackingNumber,
			Address:        schedule.Address.Address,
			City:           schedule.Address.City,
			DeliveryFee:    schedule.DeliveryFee,
			Notes:          schedule.Notes,
		},
	}
}

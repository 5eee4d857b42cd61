package entities

import "time"

type DeliverySchedule struct {
	ID             int64
	Identity       OrderIdentity
	OrderNumber    string
	CustomerID     *int64
	DeliveryDate   time.Time
	TimeSlot       string
	Status         ScheduleStatus
	Address        ShippingProfile
	Notes          string
	TrackingNumber string
	PriorityLevel  PriorityLevel
	DeliveryFee    float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Synced is false for records that exist only in the local projection
	// because the backend never acknowledged them.
	Synced bool
}

// ScheduleModify carries the mutable subset of a schedule. Identity and
// creation metadata are never part of an update.
type ScheduleModify struct {
	DeliveryDate *time.Time
	TimeSlot     *string
	Notes        *string
	Status       *ScheduleStatus
}

type ScheduleFilter struct {
	Identity    *OrderIdentity
	OrderNumber *string
	DateFrom    *time.Time
	DateTo      *time.Time
	Status      *ScheduleStatus
	ActiveOnly  bool
}

type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleInTransit ScheduleStatus = "in_transit"
	ScheduleDelivered ScheduleStatus = "delivered"
	ScheduleDelayed   ScheduleStatus = "delayed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

func (s ScheduleStatus) String() string {
	return string(s)
}

func (s ScheduleStatus) IsActive() bool {
	return s != ScheduleCancelled
}

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityNormal PriorityLevel = "normal"
	PriorityHigh   PriorityLevel = "high"
	PriorityUrgent PriorityLevel = "urgent"
)

func (p PriorityLevel) String() string {
	return string(p)
}

// Day truncates t to the start of its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

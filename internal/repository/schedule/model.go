package schedule

import "time"

type ScheduleDB struct {
	ID             int64
	OrderID        int64
	OrderType      string
	SurrogateID    bool
	OrderNumber    string
	CustomerID     *int64
	CustomerName   string
	CustomerEmail  string
	DeliveryDate   time.Time
	TimeSlot       string
	Status         string
	Address        string
	City           string
	PostalCode     string
	Province       string
	ContactPhone   string
	Notes          string
	TrackingNumber string
	PriorityLevel  string
	DeliveryFee    float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ScheduleModifyDB struct {
	DeliveryDate *time.Time
	TimeSlot     *string
	Notes        *string
	Status       *string
}

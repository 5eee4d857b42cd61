package order_status_changed

import (
	"time"

	"fulfillment/internal/entities"
)

// statusChangedEvent is the order.status.changed payload. Producers send the
// reference either as order_id or as order_number.
type statusChangedEvent struct {
	OrderID     string     `json:"order_id"`
	OrderNumber string     `json:"order_number"`
	OrderType   string     `json:"order_type"`
	Status      string     `json:"status"`
	ChangedAt   *time.Time `json:"changed_at"`
}

func (e statusChangedEvent) ref() string {
	if e.OrderID != "" {
		return e.OrderID
	}
	return e.OrderNumber
}

func (e statusChangedEvent) toDomain() entities.OrderStatusChange {
	change := entities.OrderStatusChange{ChangedAt: e.ChangedAt}

	if ref := e.ref(); ref != "" {
		change.OrderRef = &ref
	}
	if e.OrderType != "" {
		orderType := e.OrderType
		change.OrderType = &orderType
	}
	if e.Status != "" {
		status := entities.OrderStatusType(e.Status)
		change.Status = &status
	}
	return change
}

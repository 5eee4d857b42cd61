package entities

import (
	"fmt"
	"time"
)

type OrderType string

const (
	OrderRegular OrderType = "regular"
	OrderCustom  OrderType = "custom"
)

func (t OrderType) String() string {
	return string(t)
}

// OrderIdentity is the canonical key correlating a schedule with its order.
type OrderIdentity struct {
	OrderID   int64
	OrderType OrderType

	// Surrogate marks ids derived by hashing an unparseable reference.
	Surrogate bool
}

func (i OrderIdentity) Key() string {
	return fmt.Sprintf("%s:%d", i.OrderType, i.OrderID)
}

func (i OrderIdentity) IsZero() bool {
	return i.OrderID == 0
}

// RawOrder is the order aggregate as supplied by callers. Several fields have
// aliases because upstream producers disagree on naming.
type RawOrder struct {
	ID               string
	OrderNumber      string
	OrderType        string
	CreatedAt        time.Time
	UserID           *int64
	CustomerID       *int64
	CustomerName     string
	Email            string
	ShippingAddress  string
	Address          string
	CustomerAddress  string
	City             string
	ShippingCity     string
	PostalCode       string
	ShippingPostal   string
	Province         string
	ShippingProvince string
	ContactPhone     string
	CustomerPhone    string
	Phone            string
	Priority         int
	ProductionStatus string
	CustomDesignID   string
}

type ShippingProfile struct {
	Address      string
	City         string
	PostalCode   string
	Province     string
	ContactPhone string
	Email        string
	CustomerName string
}

type AggregateKind string

const (
	AggregateCustomOrder  AggregateKind = "custom_order"
	AggregateCustomDesign AggregateKind = "custom_design"
)

func (k AggregateKind) String() string {
	return string(k)
}

// AggregateRef points at the upstream aggregate whose own delivery status
// mirrors the schedule.
type AggregateRef struct {
	Kind AggregateKind
	ID   string
}

// NormalizedOrder is the single boundary representation of a RawOrder.
type NormalizedOrder struct {
	Ref              string
	Identity         OrderIdentity
	OrderNumber      string
	CustomerID       *int64
	CreatedAt        time.Time
	Shipping         ShippingProfile
	Priority         PriorityLevel
	ProductionStatus string
	SyncTarget       *AggregateRef
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
	OrderDelivered OrderStatusType = "delivered"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderStatusChange struct {
	OrderRef  *string
	OrderType *string
	Status    *OrderStatusType
	ChangedAt *time.Time
}

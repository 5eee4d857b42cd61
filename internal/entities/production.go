package entities

import "time"

// ProductionOverride is the admin-maintained record for one order. A nil
// CompletionDate means the default lead time applies.
type ProductionOverride struct {
	OrderRef         string
	CompletionDate   *time.Time
	ProductionStatus string
	UpdatedAt        time.Time
}

type ProductionOverrideModify struct {
	CompletionDate   *time.Time
	ProductionStatus *string
}

const ProductionStatusCompleted = "completed"

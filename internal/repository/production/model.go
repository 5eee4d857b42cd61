package production

import "time"

type OverrideDB struct {
	OrderRef         string
	CompletionDate   *time.Time
	ProductionStatus string
	UpdatedAt        time.Time
}

type OverrideModifyDB struct {
	CompletionDate   *time.Time
	ProductionStatus *string
}

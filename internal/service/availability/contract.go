//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type CalendarLookup interface {
	Get(ctx context.Context, date time.Time) (entities.CalendarDay, error)
}

// Policy adds reasons on top of the built-in date and capacity checks.
type Policy interface {
	Check(req Request, existing []entities.DeliverySchedule, day entities.CalendarDay) []ConflictReason
}

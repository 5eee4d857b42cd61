//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reconciler_test
package reconciler

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

// Backend is the authoritative schedule store. Create must return
// ErrDuplicateSchedule when an active schedule for the same identity exists.
type Backend interface {
	List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error)
	Create(ctx context.Context, schedule entities.DeliverySchedule) (*entities.DeliverySchedule, error)
	Update(ctx context.Context, id int64, scheduleModify entities.ScheduleModify) (*entities.DeliverySchedule, error)
}

type Projection interface {
	Get(key string) (entities.DeliverySchedule, bool)
	Put(schedule entities.DeliverySchedule)
}

type TrackingNumberFactory interface {
	Next(now time.Time) string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

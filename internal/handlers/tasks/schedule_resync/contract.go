//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_resync_test
package schedule_resync

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/reconciler"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Projection interface {
	Unsynced() []entities.DeliverySchedule
	Remove(key string)
}

// Admission re-checks a held schedule against the day it was booked on.
type Admission interface {
	Admit(ctx context.Context, schedule entities.DeliverySchedule) error
}

type Reconciler interface {
	Reconcile(ctx context.Context, req reconciler.Request) (reconciler.Outcome, error)
}

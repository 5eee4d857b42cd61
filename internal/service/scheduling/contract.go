//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scheduling_test
package scheduling

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/availability"
	"fulfillment/internal/service/production"
	"fulfillment/internal/service/reconciler"
	"fulfillment/pkg/logger"
)

type OrderNormalizer interface {
	Normalize(raw entities.RawOrder) (entities.NormalizedOrder, error)
}

type ProductionGate interface {
	ValidateSchedulingAllowed(ctx context.Context, order entities.NormalizedOrder, requestedDate time.Time) (production.Decision, error)
}

// CalendarStore returns the default day alongside a non-nil error when the
// backing table cannot be read.
type CalendarStore interface {
	Get(ctx context.Context, date time.Time) (entities.CalendarDay, error)
}

type ScheduleLister interface {
	List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error)
}

type ConflictDetector interface {
	Detect(req availability.Request, existing []entities.DeliverySchedule, day entities.CalendarDay, capacityLimit int) []availability.ConflictReason
}

type DateSuggester interface {
	Suggest(
		ctx context.Context,
		rejected availability.Request,
		existing []entities.DeliverySchedule,
		lookup availability.CalendarLookup,
		capacityLimit int,
		maxSuggestions int,
		searchWindowDays int,
	) ([]time.Time, error)
}

type ScheduleReconciler interface {
	Reconcile(ctx context.Context, req reconciler.Request) (reconciler.Outcome, error)
	Hold(req reconciler.Request, cause error) (reconciler.Outcome, error)
}

// StatusSyncer mirrors the schedule status onto the upstream aggregate.
type StatusSyncer interface {
	SetDeliveryStatus(ctx context.Context, target entities.AggregateRef, status entities.ScheduleStatus, notes string) error
}

// Notifier is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, contact entities.ShippingProfile, schedule entities.DeliverySchedule)
}

type Clock interface {
	Now() time.Time
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

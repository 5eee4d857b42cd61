package order_handle

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/order"
	"fulfillment/internal/service/reconciler"
)

type StatusHandlerFactory struct {
	schedules order.ScheduleTransitioner
}

func NewStatusHandlerFactory(schedules order.ScheduleTransitioner) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		schedules: schedules,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderCompleted, entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, identity entities.OrderIdentity) error {
	return f.transition(ctx, identity, entities.ScheduleCancelled)
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, identity entities.OrderIdentity) error {
	return f.transition(ctx, identity, entities.ScheduleDelivered)
}

// transition treats an order without an active schedule as already settled.
func (f *StatusHandlerFactory) transition(ctx context.Context, identity entities.OrderIdentity, status entities.ScheduleStatus) error {
	_, err := f.schedules.Transition(ctx, identity, status)
	if err != nil && !errors.Is(err, reconciler.ErrScheduleNotFound) {
		return fmt.Errorf("set schedule %s for order %s: %w", status, identity.Key(), err)
	}
	return nil
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"fulfillment/internal/entities"
)

type OrderGateway interface {
	GetOrderStatus(ctx context.Context, orderRef string) (entities.OrderStatusType, error)
}

type IdentityResolver interface {
	Identify(ref, orderType string) (entities.OrderIdentity, error)
}

type ScheduleTransitioner interface {
	Transition(ctx context.Context, identity entities.OrderIdentity, status entities.ScheduleStatus) (*entities.DeliverySchedule, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	ExecuteFn      func(ctx context.Context, identity entities.OrderIdentity) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)

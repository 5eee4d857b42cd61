package order

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"

	"github.com/AlekSi/pointer"
)

type Service struct {
	orderGateway  OrderGateway
	identities    IdentityResolver
	statusFactory HandlerFactory
	txManager     TxManager
}

func New(orderGateway OrderGateway, identities IdentityResolver, statusFactory HandlerFactory, txManager TxManager) *Service {
	return &Service{
		orderGateway:  orderGateway,
		identities:    identities,
		statusFactory: statusFactory,
		txManager:     txManager,
	}
}

// ProcessOrderStatusChange applies an order lifecycle event to the order's
// delivery schedule. The status reported by order-service wins over the one
// carried by the event, so late or replayed events act on current state.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, change entities.OrderStatusChange) (entities.OrderStatusType, error) {
	if change.OrderRef == nil || change.Status == nil {
		return "", ErrMissingRequiredFields
	}

	identity, err := s.identities.Identify(*change.OrderRef, pointer.Get(change.OrderType))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOrderRef, err)
	}

	status, err := s.orderGateway.GetOrderStatus(ctx, *change.OrderRef)
	if err != nil {
		return "", fmt.Errorf("get order from order-service: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// statuses without a schedule effect are skipped
		if errors.Is(err, ErrUndefinedStatus) {
			return status, nil
		}
		return status, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return executeFn(ctx, identity)
	})
	if err != nil {
		return status, err
	}

	return status, nil
}

package order

import (
	"fmt"

	"fulfillment/internal/entities"

	"google.golang.org/protobuf/types/known/structpb"
)

func getOrderRequest(orderRef string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id": orderRef,
	})
}

func setDeliveryStatusRequest(target entities.AggregateRef, status entities.ScheduleStatus, notes string) (*structpb.Struct, error) {
	fields := map[string]any{
		"aggregate":       target.Kind.String(),
		"id":              target.ID,
		"delivery_status": status.String(),
	}
	if notes != "" {
		fields["notes"] = notes
	}
	return structpb.NewStruct(fields)
}

// statusFromReply reads order.status from a GetOrder reply.
func statusFromReply(reply *structpb.Struct) (entities.OrderStatusType, error) {
	order := reply.GetFields()["order"].GetStructValue()
	if order == nil {
		return "", ErrEmptyReply
	}

	status := order.GetFields()["status"].GetStringValue()
	if status == "" {
		return "", fmt.Errorf("%w: order has no status", ErrEmptyReply)
	}
	return entities.OrderStatusType(status), nil
}

package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	orderservice "fulfillment/internal/service/order"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "order-service"

	methodGetOrder          = "/orders.v1.OrdersService/GetOrder"
	methodSetDeliveryStatus = "/orders.v1.OrdersService/SetDeliveryStatus"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type OrderGateway struct {
	client        client
	retrier       retrier
	statusTimeout time.Duration
}

// New builds the order-service gateway. statusTimeout bounds a whole
// SetDeliveryStatus call, retries included; zero leaves it to the caller.
func New(client client, statusTimeout time.Duration) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &OrderGateway{
		client:        client,
		retrier:       backoff_adapter.New(retryConfig),
		statusTimeout: statusTimeout,
	}
}

func (o *OrderGateway) GetOrderStatus(ctx context.Context, orderRef string) (entities.OrderStatusType, error) {
	req, err := getOrderRequest(orderRef)
	if err != nil {
		return "", fmt.Errorf("gateway order, build request: %w", err)
	}

	reply := &structpb.Struct{}

	err = o.executeWithMetrics(ctx, "GetOrder", func(ctx context.Context) error {
		return o.client.Invoke(ctx, methodGetOrder, req, reply)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("gateway order, get order: %s: %w", orderRef, orderservice.ErrOrderNotFound)
		}
		return "", fmt.Errorf("gateway order, get order: %s: %w", orderRef, err)
	}

	orderStatus, err := statusFromReply(reply)
	if err != nil {
		return "", fmt.Errorf("gateway order, get order: %s: %w", orderRef, err)
	}
	return orderStatus, nil
}

// SetDeliveryStatus mirrors a schedule status onto the upstream aggregate.
func (o *OrderGateway) SetDeliveryStatus(ctx context.Context, target entities.AggregateRef, deliveryStatus entities.ScheduleStatus, notes string) error {
	req, err := setDeliveryStatusRequest(target, deliveryStatus, notes)
	if err != nil {
		return fmt.Errorf("gateway order, build request: %w", err)
	}

	if o.statusTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.statusTimeout)
		defer cancel()
	}

	err = o.executeWithMetrics(ctx, "SetDeliveryStatus", func(ctx context.Context) error {
		return o.client.Invoke(ctx, methodSetDeliveryStatus, req, &emptypb.Empty{})
	})
	if err != nil {
		return fmt.Errorf("gateway order, set delivery status: %s %s: %w", target.Kind, target.ID, err)
	}
	return nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// executeWithMetrics records latency of the whole retried call and whether
// it needed more than one attempt.
func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return codes.DeadlineExceeded.String()
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}

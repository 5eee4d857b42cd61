//go:build wireinject
// +build wireinject

package app

import (
	"context"

	orderGateway "fulfillment/internal/gateway/grpc/order"
	"fulfillment/internal/handlers/tasks/schedule_resync"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/order_handle"
	"fulfillment/internal/pkg/factory/order_identity"
	"fulfillment/internal/pkg/factory/tracking_number"
	"fulfillment/internal/pkg/kafka"
	calendarRepo "fulfillment/internal/repository/calendar"
	productionRepo "fulfillment/internal/repository/production"
	"fulfillment/internal/repository/projection"
	scheduleRepo "fulfillment/internal/repository/schedule"
	"fulfillment/internal/service/availability"
	calendarService "fulfillment/internal/service/calendar"
	orderService "fulfillment/internal/service/order"
	productionService "fulfillment/internal/service/production"
	"fulfillment/internal/service/reconciler"
	"fulfillment/internal/service/scheduling"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideScheduleRepository,
	provideCalendarRepository,
	provideProductionRepository,
	provideProjection,

	wire.Bind(new(scheduleRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(calendarRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(productionRepo.Querier), new(*querier.Querier)),
)

var reconcilerSet = wire.NewSet(
	tracking_number.New,
	provideReconciler,

	wire.Bind(new(reconciler.Backend), new(*scheduleRepo.Repository)),
	wire.Bind(new(reconciler.Projection), new(*projection.Projection)),
	wire.Bind(new(reconciler.TrackingNumberFactory), new(*tracking_number.Factory)),
)

// InitializeApplication for the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		reconcilerSet,

		provideIdentityFactory,
		provideCalendarStore,
		provideProductionValidator,
		provideProductionOverrides,
		provideDetector,
		availability.NewSuggester,
		provideOrderGateway,
		provideNotifier,
		provideServiceScheduling,

		provideScheduleResyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceScheduling), new(*scheduling.Service)),
		wire.Bind(new(ServiceCalendar), new(*calendarService.Store)),
		wire.Bind(new(ServiceProduction), new(*productionService.Overrides)),

		wire.Bind(new(calendarService.Repository), new(*calendarRepo.Repository)),
		wire.Bind(new(calendarService.TxManager), new(*tx.Manager)),
		wire.Bind(new(productionService.OverrideRepository), new(*productionRepo.Repository)),
		wire.Bind(new(schedule_resync.Projection), new(*projection.Projection)),
		wire.Bind(new(schedule_resync.Admission), new(*scheduling.Service)),
		wire.Bind(new(schedule_resync.Reconciler), new(*reconciler.Reconciler)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp for the Kafka worker (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		reconcilerSet,

		provideIdentityFactory,
		provideOrderGateway,
		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(orderService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orderService.IdentityResolver), new(*order_identity.Factory)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.ScheduleTransitioner), new(*reconciler.Reconciler)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

package app

import (
	"context"

	orderGateway "fulfillment/internal/gateway/grpc/order"
	"fulfillment/internal/gateway/kafka/notification"
	"fulfillment/internal/handlers/tasks/schedule_resync"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/order_handle"
	"fulfillment/internal/pkg/factory/order_identity"
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
	"fulfillment/pkg/background"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideScheduleRepository(querier scheduleRepo.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideCalendarRepository(querier calendarRepo.Querier) *calendarRepo.Repository {
	return calendarRepo.New(querier)
}

func provideProductionRepository(querier productionRepo.Querier) *productionRepo.Repository {
	return productionRepo.New(querier)
}

func provideProjection(cfg *config.Config) (*projection.Projection, error) {
	return projection.New(cfg.Scheduling.ProjectionSize)
}

func provideReconciler(
	log logger.Logger,
	backend reconciler.Backend,
	projection reconciler.Projection,
	tracking reconciler.TrackingNumberFactory,
	cfg *config.Config,
) *reconciler.Reconciler {
	return reconciler.New(
		log,
		backend,
		projection,
		tracking,
		cfg.Scheduling.BackendTimeout,
		cfg.Scheduling.DeliveryFee,
	)
}

func provideIdentityFactory(cfg *config.Config) *order_identity.Factory {
	return order_identity.New(order_identity.Defaults{
		City:       cfg.Scheduling.DefaultCity,
		PostalCode: cfg.Scheduling.DefaultPostalCode,
		Province:   cfg.Scheduling.DefaultProvince,
	})
}

func provideCalendarStore(
	log logger.Logger,
	repository calendarService.Repository,
	txManager calendarService.TxManager,
	cfg *config.Config,
) *calendarService.Store {
	return calendarService.New(log, repository, txManager, cfg.Scheduling.CapacityLimit)
}

func provideProductionValidator(
	log logger.Logger,
	overrides productionService.OverrideRepository,
	cfg *config.Config,
) *productionService.Validator {
	return productionService.NewValidator(log, overrides, cfg.Scheduling.ProductionLeadTime)
}

func provideProductionOverrides(overrides productionService.OverrideRepository) *productionService.Overrides {
	return productionService.NewOverrides(overrides)
}

// provideDetector enables the optional policies switched on in config.
func provideDetector(cfg *config.Config) *availability.Detector {
	var policies []availability.Policy
	if cfg.Scheduling.SlotPolicyEnabled {
		policies = append(policies, availability.SlotPolicy{})
	}
	if cfg.Scheduling.DuplicateCustomerPolicyEnabled {
		policies = append(policies, availability.DuplicateCustomerPolicy{})
	}
	return availability.NewDetector(policies...)
}

func provideOrderGateway(conn *grpc.ClientConn, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(conn, cfg.OrderService.StatusTimeout)
}

func provideNotifier(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *notification.Notifier {
	return notification.New(log, producer, cfg.Kafka.NotificationTopic)
}

func provideServiceScheduling(
	log logger.Logger,
	identities *order_identity.Factory,
	validator *productionService.Validator,
	calendar *calendarService.Store,
	schedules *scheduleRepo.Repository,
	detector *availability.Detector,
	suggester *availability.Suggester,
	scheduleReconciler *reconciler.Reconciler,
	gateway *orderGateway.OrderGateway,
	notifier *notification.Notifier,
	cfg *config.Config,
) *scheduling.Service {
	return scheduling.New(
		log,
		identities,
		validator,
		calendar,
		schedules,
		detector,
		suggester,
		scheduleReconciler,
		gateway,
		notifier,
		scheduling.SystemClock{},
		scheduling.Config{
			CapacityLimit:    cfg.Scheduling.CapacityLimit,
			MaxSuggestions:   cfg.Scheduling.MaxSuggestions,
			SearchWindowDays: cfg.Scheduling.SearchWindowDays,
			DefaultTimeSlot:  cfg.Scheduling.DefaultTimeSlot,
		},
	)
}

func provideStatusHandlerFactory(schedules orderService.ScheduleTransitioner) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(schedules)
}

// provideOrderService builds the order service that handles Kafka events
func provideOrderService(
	gateway orderService.OrderGateway,
	identities orderService.IdentityResolver,
	handlerFactory orderService.HandlerFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(gateway, identities, handlerFactory, txManager)
}

func provideScheduleResyncTask(
	log logger.Logger,
	projection schedule_resync.Projection,
	admission schedule_resync.Admission,
	scheduleReconciler schedule_resync.Reconciler,
	cfg *config.Config,
) *schedule_resync.ScheduleResync {
	return schedule_resync.NewScheduleResync(log, projection, admission, scheduleReconciler, cfg.Tasks.ScheduleResyncInterval)
}

func provideTaskList(
	scheduleResyncTask *schedule_resync.ScheduleResync,
) []background.Task {
	return []background.Task{
		scheduleResyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/availability"
	"fulfillment/internal/service/production"
	"fulfillment/internal/service/reconciler"
	"fulfillment/pkg/logger"
)

type Config struct {
	CapacityLimit    int
	MaxSuggestions   int
	SearchWindowDays int
	DefaultTimeSlot  string
}

type ScheduleData struct {
	Date     time.Time
	TimeSlot string
	Notes    string
}

// Result is a stored or locally held schedule. Warnings and PartialFailures
// are caveats, never failures.
type Result struct {
	Schedule        entities.DeliverySchedule
	Path            reconciler.Path
	Completion      *production.Completion
	Advisory        *production.Advisory
	Warnings        []Warning
	PartialFailures []PartialFailure
}

func (r *Result) warn(code WarningCode, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type Service struct {
	log        handlerLogger
	normalizer OrderNormalizer
	production ProductionGate
	calendar   CalendarStore
	schedules  ScheduleLister
	detector   ConflictDetector
	suggester  DateSuggester
	reconciler ScheduleReconciler
	syncer     StatusSyncer
	notifier   Notifier
	clock      Clock
	config     Config
}

func New(
	log handlerLogger,
	normalizer OrderNormalizer,
	productionGate ProductionGate,
	calendar CalendarStore,
	schedules ScheduleLister,
	detector ConflictDetector,
	suggester DateSuggester,
	scheduleReconciler ScheduleReconciler,
	syncer StatusSyncer,
	notifier Notifier,
	clock Clock,
	config Config,
) *Service {
	return &Service{
		log:        log.With(logger.NewField("component", "scheduling")),
		normalizer: normalizer,
		production: productionGate,
		calendar:   calendar,
		schedules:  schedules,
		detector:   detector,
		suggester:  suggester,
		reconciler: scheduleReconciler,
		syncer:     syncer,
		notifier:   notifier,
		clock:      clock,
		config:     config,
	}
}

// ScheduleDelivery books raw onto data.Date.
//
// Validation, production and conflict errors are returned to the caller and
// never retried. Once the date is accepted the only hard failure is the
// caller abandoning the request before the schedule is written; backend
// trouble after that point becomes a warning on the result.
func (s *Service) ScheduleDelivery(ctx context.Context, raw entities.RawOrder, data ScheduleData) (*Result, error) {
	result, err := s.scheduleDelivery(ctx, raw, data)
	SchedulingOutcomesTotal.WithLabelValues(outcomeOf(result, err)).Inc()
	return result, err
}

func (s *Service) scheduleDelivery(ctx context.Context, raw entities.RawOrder, data ScheduleData) (*Result, error) {
	order, err := s.normalizer.Normalize(raw)
	if err != nil {
		return nil, &ValidationError{Field: "order", Err: err}
	}

	data.TimeSlot = strings.TrimSpace(data.TimeSlot)
	if data.TimeSlot == "" {
		data.TimeSlot = s.config.DefaultTimeSlot
	}
	data.Notes = strings.TrimSpace(data.Notes)

	if err := validateScheduleData(data, s.clock.Now()); err != nil {
		return nil, err
	}

	date := entities.Day(data.Date)
	log := s.log.With(
		logger.NewField("order", order.Identity.Key()),
		logger.NewField("delivery_date", date.Format(time.DateOnly)),
	)

	result := &Result{}

	decision, err := s.production.ValidateSchedulingAllowed(ctx, order, date)
	if err != nil {
		log.Info("scheduling rejected by production timeline", logger.NewField("error", err))
		return nil, err
	}
	result.Completion = decision.Completion
	result.Advisory = decision.Advisory
	if decision.Degraded {
		result.warn(WarningOverridesDegraded, "production overrides unavailable, default lead time applied")
	}

	day, err := s.calendar.Get(ctx, date)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.warn(WarningCalendarDegraded, "calendar unavailable, default capacity applied")
	}

	existing, listErr := s.activeSchedules(ctx, date)
	if listErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("existing schedules unavailable, holding schedule locally", logger.NewField("error", listErr))
		result.warn(WarningSchedulesDegraded, "existing schedules unavailable, schedule held until capacity can be checked")
	}

	req := availability.Request{
		Date:       date,
		TimeSlot:   data.TimeSlot,
		Identity:   order.Identity,
		CustomerID: order.CustomerID,
	}

	if reasons := s.detector.Detect(req, existing, day, s.config.CapacityLimit); len(reasons) > 0 {
		suggestions, err := s.suggester.Suggest(
			ctx,
			req,
			existing,
			s.calendar,
			s.config.CapacityLimit,
			s.config.MaxSuggestions,
			s.config.SearchWindowDays,
		)
		if err != nil {
			return nil, fmt.Errorf("suggest alternative dates: %w", err)
		}

		log.Info("requested date conflicts",
			logger.NewField("reasons", reasons),
			logger.NewField("suggestions", len(suggestions)),
		)
		return nil, &ConflictError{Date: date, Reasons: reasons, Suggestions: suggestions}
	}

	reconcileReq := reconciler.Request{
		Order:    order,
		Date:     date,
		TimeSlot: data.TimeSlot,
		Notes:    data.Notes,
	}

	// capacity was not checked, so nothing is written to the backend
	var outcome reconciler.Outcome
	if listErr != nil {
		outcome, err = s.reconciler.Hold(reconcileReq, listErr)
	} else {
		outcome, err = s.reconciler.Reconcile(ctx, reconcileReq)
	}
	if err != nil {
		return nil, fmt.Errorf("reconcile schedule: %w", err)
	}

	result.Schedule = outcome.Schedule
	result.Path = outcome.Path
	if outcome.Warning != nil {
		result.warn(WarningPersistenceDegraded, outcome.Warning.Error())
	}

	// the schedule is settled; secondary effects outlive the caller
	detached := context.WithoutCancel(ctx)

	if order.SyncTarget != nil {
		if err := s.syncer.SetDeliveryStatus(detached, *order.SyncTarget, outcome.Schedule.Status, data.Notes); err != nil {
			failure := PartialFailure{Target: *order.SyncTarget, Err: err}
			result.PartialFailures = append(result.PartialFailures, failure)
			result.warn(WarningStatusSyncFailed, failure.Error())

			log.Warn("delivery status sync failed", logger.NewField("error", err))
		}
	}

	if outcome.Schedule.Synced {
		s.notifier.Notify(detached, order.Shipping, outcome.Schedule)
	}

	log.Info("delivery scheduled",
		logger.NewField("path", outcome.Path.String()),
		logger.NewField("tracking_number", outcome.Schedule.TrackingNumber),
		logger.NewField("warnings", len(result.Warnings)),
	)
	return result, nil
}

// activeSchedules covers the requested day and the suggestion window after it.
func (s *Service) activeSchedules(ctx context.Context, date time.Time) ([]entities.DeliverySchedule, error) {
	to := date.AddDate(0, 0, s.config.SearchWindowDays)

	existing, err := s.schedules.List(ctx, entities.ScheduleFilter{
		DateFrom:   &date,
		DateTo:     &to,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list active schedules: %w", err)
	}
	return existing, nil
}

// Admit re-runs the calendar and capacity checks for a locally held
// schedule. It returns a *ConflictError when the day can no longer take it.
func (s *Service) Admit(ctx context.Context, schedule entities.DeliverySchedule) error {
	date := entities.Day(schedule.DeliveryDate)

	day, err := s.calendar.Get(ctx, date)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	existing, err := s.schedules.List(ctx, entities.ScheduleFilter{
		DateFrom:   &date,
		DateTo:     &date,
		ActiveOnly: true,
	})
	if err != nil {
		return fmt.Errorf("list active schedules: %w", err)
	}

	req := availability.Request{
		Date:       date,
		TimeSlot:   schedule.TimeSlot,
		Identity:   schedule.Identity,
		CustomerID: schedule.CustomerID,
	}
	if reasons := s.detector.Detect(req, existing, day, s.config.CapacityLimit); len(reasons) > 0 {
		return &ConflictError{Date: date, Reasons: reasons}
	}
	return nil
}

func (s *Service) ListSchedules(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	schedules, err := s.schedules.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

func outcomeOf(result *Result, err error) string {
	switch {
	case err == nil && len(result.Warnings) > 0:
		return outcomeScheduledWithWarnings
	case err == nil:
		return outcomeScheduled
	case errors.Is(err, ErrValidation):
		return outcomeInvalid
	case errors.Is(err, production.ErrProductionNotComplete):
		return outcomeProductionNotComplete
	case errors.Is(err, ErrConflict):
		return outcomeConflict
	default:
		return outcomeFailed
	}
}

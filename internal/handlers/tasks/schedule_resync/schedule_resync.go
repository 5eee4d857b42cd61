package schedule_resync

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/reconciler"
	"fulfillment/internal/service/scheduling"
	"fulfillment/pkg/logger"
)

// ScheduleResync replays schedules that exist only in the local projection
// until the backend acknowledges them. Each record is checked against its
// day's calendar and capacity first; a record whose day has filled up or
// closed since it was held is dropped.
type ScheduleResync struct {
	log        handlerLogger
	projection Projection
	admission  Admission
	reconciler Reconciler
	interval   time.Duration
}

func NewScheduleResync(
	log handlerLogger,
	projection Projection,
	admission Admission,
	reconciler Reconciler,
	interval time.Duration,
) *ScheduleResync {
	return &ScheduleResync{
		log:        log.With(logger.NewField("task", "schedule_resync")),
		projection: projection,
		admission:  admission,
		reconciler: reconciler,
		interval:   interval,
	}
}

func (s *ScheduleResync) TTL() time.Duration {
	return s.interval
}

// Do never fails on an unreachable backend: the records stay unsynced and
// the next tick tries again.
func (s *ScheduleResync) Do(ctx context.Context) error {
	pending := s.projection.Unsynced()
	if len(pending) == 0 {
		return nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	var synced, rejected int
	for _, schedule := range pending {
		if ctxWithTimeout.Err() != nil {
			break
		}

		ok, err := s.resync(ctxWithTimeout, schedule)
		switch {
		case errors.Is(err, scheduling.ErrConflict):
			rejected++
		case err != nil:
			s.log.With(
				logger.NewField("order", schedule.Identity.Key()),
				logger.NewField("error", err),
			).Warn("resync schedule")
		case ok:
			synced++
		}
	}

	ResyncedSchedulesTotal.Add(float64(synced))
	RejectedSchedulesTotal.Add(float64(rejected))
	PendingSchedules.Set(float64(len(pending) - synced - rejected))

	s.log.With(
		logger.NewField("pending", len(pending)),
		logger.NewField("synced", synced),
		logger.NewField("rejected", rejected),
	).Info("schedule resync")

	return ctx.Err()
}

func (s *ScheduleResync) resync(ctx context.Context, schedule entities.DeliverySchedule) (bool, error) {
	err := s.admission.Admit(ctx, schedule)
	if errors.Is(err, scheduling.ErrConflict) {
		s.projection.Remove(schedule.Identity.Key())
		s.log.With(
			logger.NewField("order", schedule.Identity.Key()),
			logger.NewField("tracking_number", schedule.TrackingNumber),
			logger.NewField("error", err),
		).Error("held schedule no longer fits its day, dropped")
		return false, err
	}
	if err != nil {
		return false, err
	}

	outcome, err := s.reconciler.Reconcile(ctx, reconciler.RequestFromSchedule(schedule))
	if err != nil {
		return false, err
	}
	return outcome.Schedule.Synced, nil
}

func (s *ScheduleResync) Info() string {
	return "schedule resync"
}

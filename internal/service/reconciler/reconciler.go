package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type Path string

const (
	PathCreated            Path = "created"
	PathUpdated            Path = "updated"
	PathDuplicateRecovered Path = "duplicate_recovered"
	PathUnsynced           Path = "unsynced"
)

func (p Path) String() string {
	return string(p)
}

type Request struct {
	Order    entities.NormalizedOrder
	Date     time.Time
	TimeSlot string
	Notes    string
}

// modify is the mutable subset written on every reschedule.
func (r Request) modify() entities.ScheduleModify {
	date := entities.Day(r.Date)
	timeSlot := r.TimeSlot
	notes := r.Notes
	status := entities.ScheduleScheduled

	return entities.ScheduleModify{
		DeliveryDate: &date,
		TimeSlot:     &timeSlot,
		Notes:        &notes,
		Status:       &status,
	}
}

func (r Request) applyTo(schedule entities.DeliverySchedule) entities.DeliverySchedule {
	schedule.DeliveryDate = entities.Day(r.Date)
	schedule.TimeSlot = r.TimeSlot
	schedule.Notes = r.Notes
	schedule.Status = entities.ScheduleScheduled
	schedule.UpdatedAt = time.Now().UTC()
	return schedule
}

// RequestFromSchedule rebuilds the request that produced schedule, so a
// locally held record can be reconciled again.
func RequestFromSchedule(schedule entities.DeliverySchedule) Request {
	return Request{
		Order: entities.NormalizedOrder{
			Identity:    schedule.Identity,
			OrderNumber: schedule.OrderNumber,
			CustomerID:  schedule.CustomerID,
			Shipping:    schedule.Address,
			Priority:    schedule.PriorityLevel,
		},
		Date:     schedule.DeliveryDate,
		TimeSlot: schedule.TimeSlot,
		Notes:    schedule.Notes,
	}
}

// Outcome is the authoritative result of one reconciliation. Warning is set
// only on PathUnsynced.
type Outcome struct {
	Schedule entities.DeliverySchedule
	Path     Path
	Warning  *PersistenceError
}

type Reconciler struct {
	log         handlerLogger
	backend     Backend
	projection  Projection
	tracking    TrackingNumberFactory
	timeout     time.Duration
	deliveryFee float64
}

func New(
	log handlerLogger,
	backend Backend,
	projection Projection,
	tracking TrackingNumberFactory,
	timeout time.Duration,
	deliveryFee float64,
) *Reconciler {
	return &Reconciler{
		log:         log.With(logger.NewField("component", "reconciler")),
		backend:     backend,
		projection:  projection,
		tracking:    tracking,
		timeout:     timeout,
		deliveryFee: deliveryFee,
	}
}

// Reconcile makes "schedule this order for this date" idempotent over a
// backend that only offers separate create and update calls.
//
// The caller may abandon the call up to the first write. Once a create or
// update has been sent the rest of the sequence runs detached from the
// caller's context, each backend call bounded by the configured timeout.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (Outcome, error) {
	identity := req.Order.Identity
	if identity.IsZero() {
		return Outcome{}, ErrMissingIdentity
	}

	log := r.log.With(logger.NewField("order", identity.Key()))

	cached, ok := r.projection.Get(identity.Key())
	if ok && cached.Synced && cached.Status.IsActive() {
		outcome, err := r.update(ctx, log, req, cached, PathUpdated)
		if !errors.Is(err, ErrScheduleNotFound) {
			return outcome, err
		}
		log.Info("projected schedule is stale, looking it up in backend")
	}

	existing, err := r.Locate(ctx, identity)
	switch {
	case err == nil:
		outcome, err := r.update(ctx, log, req, *existing, PathUpdated)
		if !errors.Is(err, ErrScheduleNotFound) {
			return outcome, err
		}
		log.Info("schedule disappeared before update, creating a new one")
	case errors.Is(err, ErrScheduleNotFound):
	case ctx.Err() != nil:
		return Outcome{}, ctx.Err()
	default:
		// the unique constraint still guards the create below
		log.Warn("schedule lookup failed, attempting create",
			logger.NewField("error", err),
		)
	}

	candidate := r.newSchedule(req)
	if ok && !cached.Synced && cached.TrackingNumber != "" {
		// a held record keeps the tracking number it was handed out with
		candidate.TrackingNumber = cached.TrackingNumber
		candidate.CreatedAt = cached.CreatedAt
	}

	return r.create(ctx, log, req, candidate)
}

// Hold keeps req as an unsynced record without writing to the backend. It
// is used when the request could not be checked against the day's capacity;
// the record is replayed once the check can run again.
func (r *Reconciler) Hold(req Request, cause error) (Outcome, error) {
	identity := req.Order.Identity
	if identity.IsZero() {
		return Outcome{}, ErrMissingIdentity
	}

	log := r.log.With(logger.NewField("order", identity.Key()))

	held := r.newSchedule(req)
	if cached, ok := r.projection.Get(identity.Key()); ok && cached.Status.IsActive() {
		held = req.applyTo(cached)
	}

	return r.degrade(log, held, &PersistenceError{Op: "check capacity", Err: cause}), nil
}

// Locate returns the most recently updated active schedule for identity.
func (r *Reconciler) Locate(ctx context.Context, identity entities.OrderIdentity) (*entities.DeliverySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	schedules, err := r.backend.List(ctx, entities.ScheduleFilter{
		Identity:   &identity,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	var latest *entities.DeliverySchedule
	for i := range schedules {
		if !schedules[i].Status.IsActive() {
			continue
		}
		if latest == nil || schedules[i].UpdatedAt.After(latest.UpdatedAt) {
			latest = &schedules[i]
		}
	}
	if latest == nil {
		return nil, ErrScheduleNotFound
	}

	return latest, nil
}

// update returns ErrScheduleNotFound untouched so the caller can fall back;
// any other backend failure degrades to an unsynced record.
func (r *Reconciler) update(ctx context.Context, log handlerLogger, req Request, current entities.DeliverySchedule, path Path) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	updated, err := r.write(ctx, func(ctx context.Context) (*entities.DeliverySchedule, error) {
		return r.backend.Update(ctx, current.ID, req.modify())
	})
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			return Outcome{}, err
		}
		return r.degrade(log, req.applyTo(current), &PersistenceError{Op: "update", Err: err}), nil
	}

	return r.commit(log, *updated, path), nil
}

func (r *Reconciler) create(ctx context.Context, log handlerLogger, req Request, candidate entities.DeliverySchedule) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	created, err := r.write(ctx, func(ctx context.Context) (*entities.DeliverySchedule, error) {
		return r.backend.Create(ctx, candidate)
	})
	switch {
	case err == nil:
		return r.commit(log, *created, PathCreated), nil
	case errors.Is(err, ErrDuplicateSchedule):
		return r.recoverDuplicate(context.WithoutCancel(ctx), log, req, candidate), nil
	default:
		return r.degrade(log, candidate, &PersistenceError{Op: "create", Err: err}), nil
	}
}

// recoverDuplicate handles a create that lost a race: the winner's record is
// located and updated with this request's fields.
func (r *Reconciler) recoverDuplicate(ctx context.Context, log handlerLogger, req Request, candidate entities.DeliverySchedule) Outcome {
	log.Info("duplicate schedule on create, updating existing record")

	existing, err := r.Locate(ctx, req.Order.Identity)
	if err != nil {
		return r.degrade(log, candidate, &PersistenceError{Op: "locate", Err: err})
	}

	updated, err := r.write(ctx, func(ctx context.Context) (*entities.DeliverySchedule, error) {
		return r.backend.Update(ctx, existing.ID, req.modify())
	})
	if err != nil {
		return r.degrade(log, req.applyTo(*existing), &PersistenceError{Op: "update", Err: err})
	}

	return r.commit(log, *updated, PathDuplicateRecovered)
}

func (r *Reconciler) write(
	ctx context.Context,
	fn func(ctx context.Context) (*entities.DeliverySchedule, error),
) (*entities.DeliverySchedule, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	schedule, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, errors.New("backend returned no schedule")
	}
	return schedule, nil
}

func (r *Reconciler) commit(log handlerLogger, schedule entities.DeliverySchedule, path Path) Outcome {
	schedule.Synced = true
	r.projection.Put(schedule)

	ReconcileTotal.WithLabelValues(path.String()).Inc()
	log.Info("schedule reconciled",
		logger.NewField("path", path.String()),
		logger.NewField("schedule_id", schedule.ID),
		logger.NewField("delivery_date", schedule.DeliveryDate.Format(time.DateOnly)),
	)

	return Outcome{Schedule: schedule, Path: path}
}

// degrade keeps the scheduling intent as an explicitly unsynced record.
func (r *Reconciler) degrade(log handlerLogger, schedule entities.DeliverySchedule, perr *PersistenceError) Outcome {
	schedule.Synced = false
	r.projection.Put(schedule)

	ReconcileTotal.WithLabelValues(PathUnsynced.String()).Inc()
	log.Warn("schedule kept locally, backend did not acknowledge",
		logger.NewField("op", perr.Op),
		logger.NewField("error", perr.Err),
	)

	return Outcome{Schedule: schedule, Path: PathUnsynced, Warning: perr}
}

func (r *Reconciler) newSchedule(req Request) entities.DeliverySchedule {
	now := time.Now().UTC()

	return entities.DeliverySchedule{
		Identity:       req.Order.Identity,
		OrderNumber:    req.Order.OrderNumber,
		CustomerID:     req.Order.CustomerID,
		DeliveryDate:   entities.Day(req.Date),
		TimeSlot:       req.TimeSlot,
		Status:         entities.ScheduleScheduled,
		Address:        req.Order.Shipping,
		Notes:          req.Notes,
		TrackingNumber: r.tracking.Next(now),
		PriorityLevel:  req.Order.Priority,
		DeliveryFee:    r.deliveryFee,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Transition moves the active schedule of identity to status. It returns
// ErrScheduleNotFound when the order has no active schedule.
func (r *Reconciler) Transition(ctx context.Context, identity entities.OrderIdentity, status entities.ScheduleStatus) (*entities.DeliverySchedule, error) {
	if identity.IsZero() {
		return nil, ErrMissingIdentity
	}

	existing, err := r.Locate(ctx, identity)
	if err != nil {
		return nil, err
	}
	if existing.Status == status {
		return existing, nil
	}

	updated, err := r.write(ctx, func(ctx context.Context) (*entities.DeliverySchedule, error) {
		return r.backend.Update(ctx, existing.ID, entities.ScheduleModify{Status: &status})
	})
	if err != nil {
		return nil, fmt.Errorf("update schedule status: %w", err)
	}

	updated.Synced = true
	r.projection.Put(*updated)

	r.log.Info("schedule status changed",
		logger.NewField("order", identity.Key()),
		logger.NewField("schedule_id", updated.ID),
		logger.NewField("from", existing.Status.String()),
		logger.NewField("to", status.String()),
	)
	return updated, nil
}

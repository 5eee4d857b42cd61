package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

const maxRangeDays = 92

// Store owns per-day capacity and availability. Reads never fail closed:
// when the backing table cannot be read, Get still returns the default open
// day alongside the error.
type Store struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
	capacity   int
}

func New(log handlerLogger, repository Repository, txManager TxManager, capacity int) *Store {
	return &Store{
		log:        log.With(logger.NewField("component", "calendar")),
		repository: repository,
		txManager:  txManager,
		capacity:   capacity,
	}
}

func (s *Store) Capacity() int {
	return s.capacity
}

func (s *Store) Get(ctx context.Context, date time.Time) (entities.CalendarDay, error) {
	date = entities.Day(date)

	var day *entities.CalendarDay
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		day, err = s.repository.Get(ctx, date)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrDayNotFound) {
			return fmt.Errorf("get calendar day: %w", err)
		}

		day, err = s.repository.Create(ctx, entities.DefaultCalendarDay(date, s.capacity))
		if err != nil {
			return fmt.Errorf("create calendar day: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("calendar unavailable, using default day",
			logger.NewField("date", date.Format(time.DateOnly)),
			logger.NewField("error", err),
		)
		return entities.DefaultCalendarDay(date, s.capacity), err
	}

	return *day, nil
}

func (s *Store) IsBookable(ctx context.Context, date time.Time) (bool, error) {
	day, err := s.Get(ctx, date)
	return day.IsBookable(), err
}

// SetDay replaces the stored record for day.Date; the next Get sees it.
func (s *Store) SetDay(ctx context.Context, day entities.CalendarDay) (*entities.CalendarDay, error) {
	if day.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if day.MaxDeliveries < 0 {
		return nil, ErrInvalidCapacity
	}
	day.Date = entities.Day(day.Date)

	saved, err := s.repository.Upsert(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("upsert calendar day: %w", err)
	}

	return saved, nil
}

func (s *Store) MarkUnavailable(ctx context.Context, date time.Time, reason string) (*entities.CalendarDay, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	day, err := s.repository.MarkUnavailable(ctx, entities.Day(date), strings.TrimSpace(reason))
	if err != nil {
		return nil, fmt.Errorf("mark calendar day unavailable: %w", err)
	}

	s.log.Info("calendar day marked unavailable",
		logger.NewField("date", day.Date.Format(time.DateOnly)),
		logger.NewField("reason", day.Notes),
	)
	return day, nil
}

// ListRange returns every day in [from, to], defaults included, with
// CurrentDeliveries derived from active schedules.
func (s *Store) ListRange(ctx context.Context, from, to time.Time) ([]entities.CalendarDay, error) {
	if from.IsZero() || to.IsZero() {
		return nil, ErrMissingDate
	}

	from, to = entities.Day(from), entities.Day(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, ErrRangeTooLong
	}

	days, err := s.repository.ListRange(ctx, from, to, s.capacity)
	if err != nil {
		return nil, fmt.Errorf("list calendar range: %w", err)
	}

	return days, nil
}

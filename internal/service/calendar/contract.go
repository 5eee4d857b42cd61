//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_test
package calendar

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type Repository interface {
	Get(ctx context.Context, date time.Time) (*entities.CalendarDay, error)
	// Create inserts the day or returns the row that already exists.
	Create(ctx context.Context, day entities.CalendarDay) (*entities.CalendarDay, error)
	Upsert(ctx context.Context, day entities.CalendarDay) (*entities.CalendarDay, error)
	MarkUnavailable(ctx context.Context, date time.Time, reason string) (*entities.CalendarDay, error)
	ListRange(ctx context.Context, from, to time.Time, defaultCapacity int) ([]entities.CalendarDay, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

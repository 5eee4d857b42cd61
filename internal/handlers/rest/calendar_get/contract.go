//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_get_test
package calendar_get

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListRange(ctx context.Context, from, to time.Time) ([]entities.CalendarDay, error)
}

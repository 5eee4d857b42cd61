//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_day_put_test
package calendar_day_put

import (
	"context"

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
	SetDay(ctx context.Context, day entities.CalendarDay) (*entities.CalendarDay, error)
}

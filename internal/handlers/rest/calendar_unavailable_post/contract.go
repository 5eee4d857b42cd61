//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_unavailable_post_test
package calendar_unavailable_post

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
	MarkUnavailable(ctx context.Context, date time.Time, reason string) (*entities.CalendarDay, error)
}

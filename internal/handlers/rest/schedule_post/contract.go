//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_post_test
package schedule_post

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/scheduling"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ScheduleDelivery(ctx context.Context, raw entities.RawOrder, data scheduling.ScheduleData) (*scheduling.Result, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=production_override_put_test
package production_override_put

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
	SetOverride(ctx context.Context, orderRef string, overrideModify entities.ProductionOverrideModify) (*entities.ProductionOverride, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=production_test
package production

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type OverrideRepository interface {
	Get(ctx context.Context, orderRef string) (*entities.ProductionOverride, error)
	Upsert(ctx context.Context, orderRef string, overrideModify entities.ProductionOverrideModify) (*entities.ProductionOverride, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

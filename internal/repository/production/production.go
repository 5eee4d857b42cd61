package production

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/production"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, orderRef string) (*entities.ProductionOverride, error) {
	query := `SELECT order_ref, completion_date, production_status, updated_at
		FROM production_tracking
		WHERE order_ref = $1`

	var overrideModel OverrideDB
	err := r.querier.QueryRow(ctx, query, orderRef).Scan(
		&overrideModel.OrderRef,
		&overrideModel.CompletionDate,
		&overrideModel.ProductionStatus,
		&overrideModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, production.ErrOverrideNotFound
		}
		return nil, fmt.Errorf("unexpected production repository get error: %w", err)
	}

	return ToDomain(&overrideModel), nil
}

// Upsert only overwrites the fields that are set.
func (r *Repository) Upsert(ctx context.Context, orderRef string, overrideModify entities.ProductionOverrideModify) (*entities.ProductionOverride, error) {
	overrideModifyModel := FromDomainModify(&overrideModify)

	query := `INSERT INTO production_tracking (order_ref, completion_date, production_status)
		VALUES ($1, $2, COALESCE($3::text, 'pending'))
		ON CONFLICT (order_ref) DO UPDATE SET
			completion_date = COALESCE(EXCLUDED.completion_date, production_tracking.completion_date),
			production_status = COALESCE($3::text, production_tracking.production_status),
			updated_at = NOW()
		RETURNING order_ref, completion_date, production_status, updated_at`

	var overrideModel OverrideDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderRef,
		overrideModifyModel.CompletionDate,
		overrideModifyModel.ProductionStatus,
	).Scan(
		&overrideModel.OrderRef,
		&overrideModel.CompletionDate,
		&overrideModel.ProductionStatus,
		&overrideModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected production repository upsert error: %w", err)
	}

	return ToDomain(&overrideModel), nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/reconciler"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// activeOrderIndex enforces one non-cancelled schedule per order.
const activeOrderIndex = "delivery_schedules_active_order_uidx"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "order_id", "order_type", "surrogate_id", "order_number", "customer_id",
	"customer_name", "customer_email", "delivery_date", "time_slot", "status",
	"delivery_address", "delivery_city", "delivery_postal_code", "delivery_province",
	"contact_phone", "notes", "tracking_number", "priority_level", "delivery_fee",
	"created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error) {
	builder := qb.
		Select(columns...).
		From("delivery_schedules")

	if filter.Identity != nil {
		builder = builder.Where(sq.Eq{
			"order_id":   filter.Identity.OrderID,
			"order_type": filter.Identity.OrderType.String(),
		})
	}
	if filter.OrderNumber != nil {
		builder = builder.Where(sq.Eq{"order_number": *filter.OrderNumber})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"delivery_date": entities.Day(*filter.DateFrom)})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"delivery_date": entities.Day(*filter.DateTo)})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.NotEq{"status": entities.ScheduleCancelled.String()})
	}

	query, args, err := builder.OrderBy("delivery_date", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list error: %w", err)
	}
	defer rows.Close()

	scheduleModels := make([]ScheduleDB, 0, 8)
	for rows.Next() {
		scheduleModel, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository list error: %w", err)
		}
		scheduleModels = append(scheduleModels, scheduleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list error: %w", err)
	}

	return ToDomainList(scheduleModels), nil
}

// Create relies on the partial unique index over active (order_id,
// order_type) pairs to detect a concurrent first schedule.
func (r *Repository) Create(ctx context.Context, schedule entities.DeliverySchedule) (*entities.DeliverySchedule, error) {
	scheduleModel := FromDomain(&schedule)

	query, args, err := qb.
		Insert("delivery_schedules").
		Columns(columns[1:]...).
		Values(
			scheduleModel.OrderID,
			scheduleModel.OrderType,
			scheduleModel.SurrogateID,
			scheduleModel.OrderNumber,
			scheduleModel.CustomerID,
			scheduleModel.CustomerName,
			scheduleModel.CustomerEmail,
			scheduleModel.DeliveryDate,
			scheduleModel.TimeSlot,
			scheduleModel.Status,
			scheduleModel.Address,
			scheduleModel.City,
			scheduleModel.PostalCode,
			scheduleModel.Province,
			scheduleModel.ContactPhone,
			scheduleModel.Notes,
			scheduleModel.TrackingNumber,
			scheduleModel.PriorityLevel,
			scheduleModel.DeliveryFee,
			scheduleModel.CreatedAt,
			scheduleModel.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository create error: %w", err)
	}

	created, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsUniqueViolationOn(err, activeOrderIndex) {
			return nil, reconciler.ErrDuplicateSchedule
		}
		return nil, fmt.Errorf("unexpected schedule repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

// Update touches only the mutable fields and never resurrects a cancelled
// schedule.
func (r *Repository) Update(ctx context.Context, id int64, scheduleModify entities.ScheduleModify) (*entities.DeliverySchedule, error) {
	scheduleModifyModel := FromDomainModify(&scheduleModify)

	builder := qb.
		Update("delivery_schedules")

	if scheduleModifyModel.DeliveryDate != nil {
		builder = builder.Set("delivery_date", scheduleModifyModel.DeliveryDate)
	}
	if scheduleModifyModel.TimeSlot != nil {
		builder = builder.Set("time_slot", scheduleModifyModel.TimeSlot)
	}
	if scheduleModifyModel.Notes != nil {
		builder = builder.Set("notes", scheduleModifyModel.Notes)
	}
	if scheduleModifyModel.Status != nil {
		builder = builder.Set("status", scheduleModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": entities.ScheduleCancelled.String()}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository update error: %w", err)
	}

	updated, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reconciler.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

func scan(row pgx.Row) (ScheduleDB, error) {
	var s ScheduleDB
	err := row.Scan(
		&s.ID,
		&s.OrderID,
		&s.OrderType,
		&s.SurrogateID,
		&s.OrderNumber,
		&s.CustomerID,
		&s.CustomerName,
		&s.CustomerEmail,
		&s.DeliveryDate,
		&s.TimeSlot,
		&s.Status,
		&s.Address,
		&s.City,
		&s.PostalCode,
		&s.Province,
		&s.ContactPhone,
		&s.Notes,
		&s.TrackingNumber,
		&s.PriorityLevel,
		&s.DeliveryFee,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

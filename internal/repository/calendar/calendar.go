package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/calendar"

	"github.com/jackc/pgx/v5"
)

const returning = `calendar_date, is_available, max_deliveries, morning_slot, afternoon_slot,
	evening_slot, is_holiday, is_blackout, notes, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, date time.Time) (*entities.CalendarDay, error) {
	query := `SELECT ` + returning + `
		FROM delivery_calendar
		WHERE calendar_date = $1`

	dayModel, err := scan(r.querier.QueryRow(ctx, query, entities.Day(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, calendar.ErrDayNotFound
		}
		return nil, fmt.Errorf("unexpected calendar repository get error: %w", err)
	}

	return ToDomain(&dayModel), nil
}

// Create keeps a concurrently inserted row instead of overwriting it.
func (r *Repository) Create(ctx context.Context, day entities.CalendarDay) (*entities.CalendarDay, error) {
	dayModel := FromDomain(&day)

	query := `INSERT INTO delivery_calendar (
			calendar_date, is_available, max_deliveries, morning_slot, afternoon_slot,
			evening_slot, is_holiday, is_blackout, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (calendar_date) DO UPDATE SET calendar_date = EXCLUDED.calendar_date
		RETURNING ` + returning

	created, err := scan(r.querier.QueryRow(ctx, query, args(dayModel)...))
	if err != nil {
		return nil, fmt.Errorf("unexpected calendar repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) Upsert(ctx context.Context, day entities.CalendarDay) (*entities.CalendarDay, error) {
	dayModel := FromDomain(&day)

	query := `INSERT INTO delivery_calendar (
			calendar_date, is_available, max_deliveries, morning_slot, afternoon_slot,
			evening_slot, is_holiday, is_blackout, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (calendar_date) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			max_deliveries = EXCLUDED.max_deliveries,
			morning_slot = EXCLUDED.morning_slot,
			afternoon_slot = EXCLUDED.afternoon_slot,
			evening_slot = EXCLUDED.evening_slot,
			is_holiday = EXCLUDED.is_holiday,
			is_blackout = EXCLUDED.is_blackout,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + returning

	saved, err := scan(r.querier.QueryRow(ctx, query, args(dayModel)...))
	if err != nil {
		return nil, fmt.Errorf("unexpected calendar repository upsert error: %w", err)
	}

	return ToDomain(&saved), nil
}

// MarkUnavailable closes the day and drops its capacity to zero. Slot flags
// and the holiday marker are left as they were.
func (r *Repository) MarkUnavailable(ctx context.Context, date time.Time, reason string) (*entities.CalendarDay, error) {
	query := `INSERT INTO delivery_calendar (calendar_date, is_available, is_blackout, max_deliveries, notes)
		VALUES ($1, FALSE, TRUE, 0, $2)
		ON CONFLICT (calendar_date) DO UPDATE SET
			is_available = FALSE,
			is_blackout = TRUE,
			max_deliveries = 0,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + returning

	saved, err := scan(r.querier.QueryRow(ctx, query, entities.Day(date), reason))
	if err != nil {
		return nil, fmt.Errorf("unexpected calendar repository mark unavailable error: %w", err)
	}

	return ToDomain(&saved), nil
}

// ListRange yields one row per day in [from, to]; days without a stored
// record come back open with defaultCapacity.
func (r *Repository) ListRange(ctx context.Context, from, to time.Time, defaultCapacity int) ([]entities.CalendarDay, error) {
	query := `
		SELECT
			d.day::date,
			COALESCE(c.is_available, TRUE),
			COALESCE(c.max_deliveries, $3),
			COALESCE(c.morning_slot, TRUE),
			COALESCE(c.afternoon_slot, TRUE),
			COALESCE(c.evening_slot, TRUE),
			COALESCE(c.is_holiday, FALSE),
			COALESCE(c.is_blackout, FALSE),
			COALESCE(c.notes, ''),
			c.updated_at,
			(
				SELECT COUNT(*)
				FROM delivery_schedules s
				WHERE s.delivery_date = d.day::date
				  AND s.status <> 'cancelled'
			)
		FROM generate_series($1::date, $2::date, INTERVAL '1 day') AS d(day)
		LEFT JOIN delivery_calendar c ON c.calendar_date = d.day::date
		ORDER BY d.day
	`

	rows, err := r.querier.Query(ctx, query, entities.Day(from), entities.Day(to), defaultCapacity)
	if err != nil {
		return nil, fmt.Errorf("unexpected calendar repository list range error: %w", err)
	}
	defer rows.Close()

	dayModels := make([]CalendarDayDB, 0, 32)
	for rows.Next() {
		var d CalendarDayDB
		err := rows.Scan(
			&d.Date,
			&d.IsAvailable,
			&d.MaxDeliveries,
			&d.MorningSlot,
			&d.AfternoonSlot,
			&d.EveningSlot,
			&d.IsHoliday,
			&d.IsBlackout,
			&d.Notes,
			&d.UpdatedAt,
			&d.CurrentDeliveries,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected calendar repository list range error: %w", err)
		}
		dayModels = append(dayModels, d)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected calendar repository list range error: %w", err)
	}

	return ToDomainList(dayModels), nil
}

func args(d *CalendarDayDB) []interface{} {
	return []interface{}{
		d.Date,
		d.IsAvailable,
		d.MaxDeliveries,
		d.MorningSlot,
		d.AfternoonSlot,
		d.EveningSlot,
		d.IsHoliday,
		d.IsBlackout,
		d.Notes,
	}
}

func scan(row pgx.Row) (CalendarDayDB, error) {
	var d CalendarDayDB
	err := row.Scan(
		&d.Date,
		&d.IsAvailable,
		&d.MaxDeliveries,
		&d.MorningSlot,
		&d.AfternoonSlot,
		&d.EveningSlot,
		&d.IsHoliday,
		&d.IsBlackout,
		&d.Notes,
		&d.UpdatedAt,
	)
	return d, err
}

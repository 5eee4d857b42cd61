package production

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

const DefaultLeadTime = 10 * 24 * time.Hour

// CompletionDate is the admin override when present, otherwise createdAt
// plus the lead time. The flag reports whether the override was used.
func CompletionDate(createdAt time.Time, override *time.Time, leadTime time.Duration) (time.Time, bool) {
	if override != nil {
		return *override, true
	}
	return createdAt.Add(leadTime), false
}

// IsProductionComplete is inclusive: now == completion counts as complete.
func IsProductionComplete(completion, now time.Time) bool {
	return !now.Before(completion)
}

type Completion struct {
	Date     time.Time
	AdminSet bool
}

// Advisory is a soft warning for regular orders whose reported production
// status is not yet completed. It never blocks scheduling.
type Advisory struct {
	ConfirmationRequired bool
	ProductionStatus     string
}

type Decision struct {
	// Completion is set for custom orders only.
	Completion *Completion
	Advisory   *Advisory

	// Degraded means the override store could not be read and the default
	// lead time was applied.
	Degraded bool
}

type Validator struct {
	log       handlerLogger
	overrides OverrideRepository
	leadTime  time.Duration
}

func NewValidator(log handlerLogger, overrides OverrideRepository, leadTime time.Duration) *Validator {
	if leadTime <= 0 {
		leadTime = DefaultLeadTime
	}

	return &Validator{
		log:       log.With(logger.NewField("component", "production_validator")),
		overrides: overrides,
		leadTime:  leadTime,
	}
}

func (v *Validator) Completion(ctx context.Context, order entities.NormalizedOrder) (Completion, bool) {
	override, degraded := v.lookup(ctx, order.Ref)
	return v.completion(order, override), degraded
}

func (v *Validator) IsProductionComplete(ctx context.Context, order entities.NormalizedOrder, now time.Time) bool {
	completion, _ := v.Completion(ctx, order)
	return IsProductionComplete(completion.Date, now)
}

// ValidateSchedulingAllowed gates custom orders on their completion date.
// Dates are compared by calendar day, so a request for the completion day
// itself is accepted.
func (v *Validator) ValidateSchedulingAllowed(ctx context.Context, order entities.NormalizedOrder, requestedDate time.Time) (Decision, error) {
	override, degraded := v.lookup(ctx, order.Ref)
	decision := Decision{Degraded: degraded}

	if order.Identity.OrderType != entities.OrderCustom {
		status := order.ProductionStatus
		if status == "" && override != nil {
			status = override.ProductionStatus
		}
		if status != "" && !strings.EqualFold(status, entities.ProductionStatusCompleted) {
			decision.Advisory = &Advisory{
				ConfirmationRequired: true,
				ProductionStatus:     status,
			}
		}
		return decision, nil
	}

	completion := v.completion(order, override)
	decision.Completion = &completion

	if entities.Day(requestedDate).Before(entities.Day(completion.Date)) {
		return decision, &NotCompleteError{
			RequestedDate:  requestedDate,
			CompletionDate: completion.Date,
			AdminSet:       completion.AdminSet,
		}
	}

	return decision, nil
}

func (v *Validator) completion(order entities.NormalizedOrder, override *entities.ProductionOverride) Completion {
	var adminDate *time.Time
	if override != nil {
		adminDate = override.CompletionDate
	}

	date, adminSet := CompletionDate(order.CreatedAt, adminDate, v.leadTime)
	return Completion{Date: date, AdminSet: adminSet}
}

func (v *Validator) lookup(ctx context.Context, orderRef string) (*entities.ProductionOverride, bool) {
	override, err := v.overrides.Get(ctx, orderRef)
	if err == nil {
		return override, false
	}
	if errors.Is(err, ErrOverrideNotFound) {
		return nil, false
	}

	v.log.Warn("production override lookup failed, using default lead time",
		logger.NewField("order", orderRef),
		logger.NewField("error", err),
	)
	return nil, true
}

type Overrides struct {
	repository OverrideRepository
}

func NewOverrides(repository OverrideRepository) *Overrides {
	return &Overrides{repository: repository}
}

func (o *Overrides) SetOverride(ctx context.Context, orderRef string, overrideModify entities.ProductionOverrideModify) (*entities.ProductionOverride, error) {
	if !isValidOrderRef(orderRef) {
		return nil, ErrInvalidOrderRef
	}
	if overrideModify.CompletionDate == nil && overrideModify.ProductionStatus == nil {
		return nil, ErrMissingRequiredFields
	}
	if overrideModify.ProductionStatus != nil && !isValidProductionStatus(*overrideModify.ProductionStatus) {
		return nil, ErrInvalidProductionStatus
	}

	override, err := o.repository.Upsert(ctx, strings.TrimSpace(orderRef), overrideModify)
	if err != nil {
		return nil, fmt.Errorf("upsert production override: %w", err)
	}

	return override, nil
}

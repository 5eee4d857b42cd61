package production

import "fulfillment/internal/entities"

func ToDomain(o *OverrideDB) *entities.ProductionOverride {
	if o == nil {
		return nil
	}
	return &entities.ProductionOverride{
		OrderRef:         o.OrderRef,
		CompletionDate:   o.CompletionDate,
		ProductionStatus: o.ProductionStatus,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromDomainModify(o *entities.ProductionOverrideModify) *OverrideModifyDB {
	if o == nil {
		return nil
	}
	overrideModifyDB := &OverrideModifyDB{}

	if o.CompletionDate != nil {
		completion := o.CompletionDate.UTC()
		overrideModifyDB.CompletionDate = &completion
	}
	if o.ProductionStatus != nil {
		overrideModifyDB.ProductionStatus = o.ProductionStatus
	}

	return overrideModifyDB
}

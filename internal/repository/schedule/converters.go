package schedule

import "fulfillment/internal/entities"

func ToDomain(s *ScheduleDB) *entities.DeliverySchedule {
	if s == nil {
		return nil
	}
	return &entities.DeliverySchedule{
		ID: s.ID,
		Identity: entities.OrderIdentity{
			OrderID:   s.OrderID,
			OrderType: entities.OrderType(s.OrderType),
			Surrogate: s.SurrogateID,
		},
		OrderNumber:  s.OrderNumber,
		CustomerID:   s.CustomerID,
		DeliveryDate: entities.Day(s.DeliveryDate),
		TimeSlot:     s.TimeSlot,
		Status:       entities.ScheduleStatus(s.Status),
		Address: entities.ShippingProfile{
			Address:      s.Address,
			City:         s.City,
			PostalCode:   s.PostalCode,
			Province:     s.Province,
			ContactPhone: s.ContactPhone,
			Email:        s.CustomerEmail,
			CustomerName: s.CustomerName,
		},
		Notes:          s.Notes,
		TrackingNumber: s.TrackingNumber,
		PriorityLevel:  entities.PriorityLevel(s.PriorityLevel),
		DeliveryFee:    s.DeliveryFee,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Synced:         true,
	}
}

func FromDomain(s *entities.DeliverySchedule) *ScheduleDB {
	if s == nil {
		return nil
	}
	return &ScheduleDB{
		ID:             s.ID,
		OrderID:        s.Identity.OrderID,
		OrderType:      s.Identity.OrderType.String(),
		SurrogateID:    s.Identity.Surrogate,
		OrderNumber:    s.OrderNumber,
		CustomerID:     s.CustomerID,
		CustomerName:   s.Address.CustomerName,
		CustomerEmail:  s.Address.Email,
		DeliveryDate:   entities.Day(s.DeliveryDate),
		TimeSlot:       s.TimeSlot,
		Status:         s.Status.String(),
		Address:        s.Address.Address,
		City:           s.Address.City,
		PostalCode:     s.Address.PostalCode,
		Province:       s.Address.Province,
		ContactPhone:   s.Address.ContactPhone,
		Notes:          s.Notes,
		TrackingNumber: s.TrackingNumber,
		PriorityLevel:  s.PriorityLevel.String(),
		DeliveryFee:    s.DeliveryFee,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromDomainModify(s *entities.ScheduleModify) *ScheduleModifyDB {
	if s == nil {
		return nil
	}
	scheduleModifyDB := &ScheduleModifyDB{}

	if s.DeliveryDate != nil {
		date := entities.Day(*s.DeliveryDate)
		scheduleModifyDB.DeliveryDate = &date
	}
	if s.TimeSlot != nil {
		scheduleModifyDB.TimeSlot = s.TimeSlot
	}
	if s.Notes != nil {
		scheduleModifyDB.Notes = s.Notes
	}
	if s.Status != nil {
		status := s.Status.String()
		scheduleModifyDB.Status = &status
	}

	return scheduleModifyDB
}

func ToDomainList(schedulesDB []ScheduleDB) []entities.DeliverySchedule {
	if len(schedulesDB) == 0 {
		return []entities.DeliverySchedule{}
	}

	result := make([]entities.DeliverySchedule, len(schedulesDB))
	for i, scheduleDB := range schedulesDB {
		result[i] = *ToDomain(&scheduleDB)
	}
	return result
}

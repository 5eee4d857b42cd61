package schedule_post

import (
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/service/scheduling"

	"github.com/AlekSi/pointer"
)

func toRawOrder(order dto.Order) entities.RawOrder {
	return entities.RawOrder{
		ID:               pointer.Get(order.Id),
		OrderNumber:      pointer.Get(order.OrderNumber),
		OrderType:        pointer.Get(order.OrderType),
		CreatedAt:        pointer.Get(order.CreatedAt),
		UserID:           order.UserId,
		CustomerID:       order.CustomerId,
		CustomerName:     pointer.Get(order.CustomerName),
		Email:            pointer.Get(order.Email),
		ShippingAddress:  pointer.Get(order.ShippingAddress),
		Address:          pointer.Get(order.Address),
		CustomerAddress:  pointer.Get(order.CustomerAddress),
		City:             pointer.Get(order.City),
		ShippingCity:     pointer.Get(order.ShippingCity),
		PostalCode:       pointer.Get(order.PostalCode),
		ShippingPostal:   pointer.Get(order.ShippingPostalCode),
		Province:         pointer.Get(order.Province),
		ShippingProvince: pointer.Get(order.ShippingProvince),
		ContactPhone:     pointer.Get(order.ContactPhone),
		CustomerPhone:    pointer.Get(order.CustomerPhone),
		Phone:            pointer.Get(order.Phone),
		Priority:         pointer.Get(order.Priority),
		ProductionStatus: pointer.Get(order.ProductionStatus),
		CustomDesignID:   pointer.Get(order.CustomDesignId),
	}
}

func toResponseDTO(result *scheduling.Result) dto.ScheduleDeliveryResponse {
	response := dto.ScheduleDeliveryResponse{
		Schedule:        convert.Schedule(result.Schedule),
		Path:            result.Path.String(),
		Warnings:        make([]dto.Warning, len(result.Warnings)),
		PartialFailures: make([]dto.PartialFailure, len(result.PartialFailures)),
	}

	if result.Completion != nil {
		response.ProductionCompletion = &dto.ProductionCompletion{
			CompletionDate: result.Completion.Date.Format(time.DateOnly),
			AdminSet:       result.Completion.AdminSet,
		}
	}
	if result.Advisory != nil {
		response.Advisory = &dto.ProductionAdvisory{
			ConfirmationRequired: result.Advisory.ConfirmationRequired,
			ProductionStatus:     result.Advisory.ProductionStatus,
		}
	}
	for i, warning := range result.Warnings {
		response.Warnings[i] = dto.Warning{Code: warning.Code.String(), Message: warning.Message}
	}
	for i, failure := range result.PartialFailures {
		response.PartialFailures[i] = dto.PartialFailure{
			Aggregate: failure.Target.Kind.String(),
			Id:        failure.Target.ID,
			Error:     failure.Err.Error(),
		}
	}

	return response
}

package schedule_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/service/production"
	"fulfillment/internal/service/scheduling"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "schedule_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.ScheduleDeliveryRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Code: "INVALID_JSON", Message: "request body is not valid JSON"})
		return
	}

	var deliveryDate time.Time
	if request.DeliveryDate != "" {
		deliveryDate, err = time.Parse(time.DateOnly, request.DeliveryDate)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, dto.Error{
				Code:    "VALIDATION_ERROR",
				Message: "delivery_date must be YYYY-MM-DD",
				Field:   pointer.To("delivery_date"),
			})
			return
		}
	}

	result, err := h.service.ScheduleDelivery(r.Context(), toRawOrder(request.Order), scheduling.ScheduleData{
		Date:     deliveryDate,
		TimeSlot: pointer.Get(request.TimeSlot),
		Notes:    pointer.Get(request.Notes),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toResponseDTO(result))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validationErr  *scheduling.ValidationError
		notCompleteErr *production.NotCompleteError
		conflictErr    *scheduling.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		h.writeJSON(w, http.StatusBadRequest, dto.Error{
			Code:    "VALIDATION_ERROR",
			Message: validationErr.Error(),
			Field:   pointer.To(validationErr.Field),
		})
	case errors.As(err, &notCompleteErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, dto.ProductionNotCompleteError{
			Code:           "PRODUCTION_NOT_COMPLETE",
			Message:        notCompleteErr.Error(),
			RequestedDate:  notCompleteErr.RequestedDate.Format(time.DateOnly),
			CompletionDate: notCompleteErr.CompletionDate.Format(time.DateOnly),
			AdminSet:       notCompleteErr.AdminSet,
		})
	case errors.As(err, &conflictErr):
		response := dto.ScheduleConflictError{
			Code:        "DATE_NOT_AVAILABLE",
			Message:     conflictErr.Error(),
			Date:        conflictErr.Date.Format(time.DateOnly),
			Reasons:     make([]string, len(conflictErr.Reasons)),
			Suggestions: make([]string, len(conflictErr.Suggestions)),
		}
		for i, reason := range conflictErr.Reasons {
			response.Reasons[i] = reason.String()
		}
		for i, suggestion := range conflictErr.Suggestions {
			response.Suggestions[i] = suggestion.Format(time.DateOnly)
		}
		h.writeJSON(w, http.StatusConflict, response)
	default:
		h.log.With(
			logger.NewField("error", err),
		).Error("schedule delivery failed")
		h.writeJSON(w, http.StatusInternalServerError, dto.Error{Code: "INTERNAL", Message: "delivery could not be scheduled"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package schedules_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/service/scheduling"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "schedules_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, field, err := parseFilter(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{
			Code:    "VALIDATION_ERROR",
			Message: field + " must be YYYY-MM-DD",
			Field:   pointer.To(field),
		})
		return
	}

	schedules, err := h.service.ListSchedules(r.Context(), filter)
	if err != nil {
		var validationErr *scheduling.ValidationError
		if errors.As(err, &validationErr) {
			h.writeJSON(w, http.StatusBadRequest, dto.Error{
				Code:    "VALIDATION_ERROR",
				Message: validationErr.Error(),
				Field:   pointer.To(validationErr.Field),
			})
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("list schedules failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, convert.Schedules(schedules))
}

func parseFilter(r *http.Request) (entities.ScheduleFilter, string, error) {
	query := r.URL.Query()

	var (
		filter entities.ScheduleFilter
		err    error
	)

	filter.DateFrom, err = convert.Date(query.Get("date_from"))
	if err != nil {
		return filter, "date_from", err
	}
	filter.DateTo, err = convert.Date(query.Get("date_to"))
	if err != nil {
		return filter, "date_to", err
	}

	if status := strings.TrimSpace(query.Get("status")); status != "" {
		filter.Status = pointer.To(entities.ScheduleStatus(status))
	}
	if orderNumber := strings.TrimSpace(query.Get("order_number")); orderNumber != "" {
		filter.OrderNumber = pointer.To(orderNumber)
	}

	return filter, "", nil
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

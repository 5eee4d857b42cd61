package calendar_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/service/calendar"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "calendar_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := convert.Date(query.Get("from"))
	if err != nil {
		h.badRequest(w, "from must be YYYY-MM-DD")
		return
	}
	to, err := convert.Date(query.Get("to"))
	if err != nil {
		h.badRequest(w, "to must be YYYY-MM-DD")
		return
	}

	days, err := h.service.ListRange(r.Context(), pointer.Get(from), pointer.Get(to))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrMissingDate),
			errors.Is(err, calendar.ErrInvalidRange),
			errors.Is(err, calendar.ErrRangeTooLong):
			h.badRequest(w, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list calendar failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.CalendarDay, len(days))
	for i, day := range days {
		response[i] = convert.CalendarDay(day)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, dto.Error{Code: "VALIDATION_ERROR", Message: message})
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

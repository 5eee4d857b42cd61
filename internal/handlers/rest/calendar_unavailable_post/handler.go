package calendar_unavailable_post

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
	handlerLog := log.With(logger.NewField("handler", "calendar_unavailable_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.MarkUnavailableRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.badRequest(w, "request body is not valid JSON")
		return
	}

	date, err := convert.Date(request.Date)
	if err != nil {
		h.badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	day, err := h.service.MarkUnavailable(r.Context(), pointer.Get(date), pointer.Get(request.Reason))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrMissingDate):
			h.badRequest(w, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("mark calendar day unavailable failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, convert.CalendarDay(*day))
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

package calendar_day_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/service/calendar"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "calendar_day_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, mux.Vars(r)["date"])
	if err != nil {
		h.badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	var update dto.CalendarDayUpdate
	err = json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		h.badRequest(w, "request body is not valid JSON")
		return
	}

	day, err := h.service.SetDay(r.Context(), toCalendarDay(date, update))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrMissingDate),
			errors.Is(err, calendar.ErrInvalidCapacity):
			h.badRequest(w, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("set calendar day failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, convert.CalendarDay(*day))
}

// toCalendarDay treats omitted slot flags as open and omitted
// holiday/blackout flags as unset.
func toCalendarDay(date time.Time, update dto.CalendarDayUpdate) entities.CalendarDay {
	return entities.CalendarDay{
		Date:          date,
		IsAvailable:   update.IsAvailable,
		MaxDeliveries: update.MaxDeliveries,
		MorningSlot:   openUnlessSet(update.MorningSlot),
		AfternoonSlot: openUnlessSet(update.AfternoonSlot),
		EveningSlot:   openUnlessSet(update.EveningSlot),
		IsHoliday:     pointer.Get(update.IsHoliday),
		IsBlackout:    pointer.Get(update.IsBlackout),
		Notes:         pointer.Get(update.Notes),
	}
}

func openUnlessSet(slot *bool) bool {
	return slot == nil || *slot
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

package production_override_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/service/production"
	"fulfillment/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "production_override_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderRef := mux.Vars(r)["orderRef"]

	var request dto.ProductionOverrideRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.badRequest(w, "request body is not valid JSON")
		return
	}

	modify := entities.ProductionOverrideModify{ProductionStatus: request.ProductionStatus}
	if request.CompletionDate != nil {
		modify.CompletionDate, err = convert.Date(*request.CompletionDate)
		if err != nil {
			h.badRequest(w, "completion_date must be YYYY-MM-DD")
			return
		}
	}

	override, err := h.service.SetOverride(r.Context(), orderRef, modify)
	if err != nil {
		switch {
		case errors.Is(err, production.ErrInvalidOrderRef),
			errors.Is(err, production.ErrMissingRequiredFields),
			errors.Is(err, production.ErrInvalidProductionStatus):
			h.badRequest(w, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_ref", orderRef),
			).Error("set production override failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ProductionOverride{
		OrderRef:         override.OrderRef,
		ProductionStatus: override.ProductionStatus,
		UpdatedAt:        override.UpdatedAt,
	}
	if override.CompletionDate != nil {
		response.CompletionDate = convert.Optional(override.CompletionDate.Format(time.DateOnly))
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

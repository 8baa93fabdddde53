package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CarRentalService/internal/usecase/check_availability"
)

const (
	msgInvalidVehicleID = "некорректный ID машины"
	msgInvalidRange     = "некорректный период аренды, ожидается start и end в формате RFC 3339"
	msgNotFound         = "машина не найдена"
	msgDataUnavailable  = "данные о доступности временно недоступны, повторите запрос"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.ParseInt(mux.Vars(r)["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	dateRange, err := handlers.ParseDateRange(r.URL.Query(), "start", "end")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{VehicleID: vehicleID, Range: dateRange})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrDataUnavailable):
			h.logger.Error("GET /vehicles/{id}/availability - Failing closed: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondUnavailable(w, handlers.CodeDataUnavailable, msgDataUnavailable)

		default:
			h.logger.Error("GET /vehicles/{id}/availability - Failed to check: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		VehicleID: result.VehicleID,
		StartAt:   dateRange.Start.Format(domain.DateTimeFormat),
		EndAt:     dateRange.End.Format(domain.DateTimeFormat),
		Available: result.Available,
	})
}

package search_vehicles

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	searchVehicles "github.com/m04kA/SMC-CarRentalService/internal/usecase/search_vehicles"
)

const (
	msgInvalidRange     = "некорректный период аренды, ожидается start и end в формате RFC 3339"
	msgInvalidFilter    = "некорректные параметры фильтра"
	msgLocationNotFound = "локация не найдена"
	msgDataUnavailable  = "данные о доступности временно недоступны, повторите запрос"
)

type Handler struct {
	useCase SearchVehiclesUseCase
	logger  Logger
}

func NewHandler(useCase SearchVehiclesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dateRange, err := handlers.ParseDateRange(q, "start", "end")
	if err != nil {
		h.logger.Warn("GET /vehicles/available - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	req, err := parseFilter(q)
	if err != nil {
		h.logger.Warn("GET /vehicles/available - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	req.Range = dateRange

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, searchVehicles.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, searchVehicles.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, domain.ErrDataUnavailable):
			h.logger.Error("GET /vehicles/available - Failing closed: %v", err)
			handlers.RespondUnavailable(w, handlers.CodeDataUnavailable, msgDataUnavailable)

		default:
			h.logger.Error("GET /vehicles/available - Failed to search vehicles: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/available - Found %d vehicles, days=%d", len(result.Vehicles), result.RentalDays)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

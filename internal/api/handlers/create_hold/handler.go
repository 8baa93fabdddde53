package create_hold

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	createHold "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_hold"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный период, ожидается startAt и endAt в формате RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры холда"
	msgVehicleNotFound    = "машина не найдена"
	msgNotAvailable       = "машина недоступна на выбранный период"
	msgDataUnavailable    = "не удалось проверить доступность, попробуйте позже"
)

type Handler struct {
	useCase CreateHoldUseCase
	logger  Logger
}

func NewHandler(useCase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /holds - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /holds - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrInvalidInput), errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /holds - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createHold.ErrVehicleNotFound):
			h.logger.Warn("POST /holds - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createHold.ErrVehicleNotAvailable):
			h.logger.Warn("POST /holds - Vehicle not available: vehicle_id=%d, user_id=%d", req.VehicleID, userID)
			handlers.RespondConflict(w, handlers.CodeNotAvailable, msgNotAvailable)

		case errors.Is(err, domain.ErrDataUnavailable):
			h.logger.Error("POST /holds - Availability data unavailable: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondUnavailable(w, handlers.CodeDataUnavailable, msgDataUnavailable)

		default:
			h.logger.Error("POST /holds - Failed to create hold: vehicle_id=%d, user_id=%d, error=%v",
				req.VehicleID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds - Hold created: hold_id=%s, vehicle_id=%d, user_id=%d",
		result.Hold.ID, req.VehicleID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainHold(result.Hold))
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры бронирования: ожидаются даты RFC 3339, сумма total и UUID холда"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgVehicleNotFound    = "машина не найдена"
	msgNotAvailable       = "машина недоступна на выбранный период"
	msgHoldNotFound       = "холд не найден"
	msgHoldMismatch       = "холд не соответствует бронированию"
	msgHoldExpired        = "холд истек или уже использован"
	msgPriceMismatch      = "стоимость изменилась, подтвердите новую сумму"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (даты, сумма, холд)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var mismatch *domain.PriceMismatchError
		switch {
		case errors.As(err, &mismatch):
			h.logger.Warn("POST /bookings - Price mismatch: user_id=%d, vehicle_id=%d, submitted=%s, expected=%s",
				userID, req.VehicleID, mismatch.Submitted.StringFixed(2), mismatch.Expected.StringFixed(2))
			handlers.RespondJSON(w, http.StatusConflict, FromPriceMismatch(mismatch, msgPriceMismatch))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotAvailable):
			h.logger.Warn("POST /bookings - Vehicle not available: vehicle_id=%d, user_id=%d", req.VehicleID, userID)
			handlers.RespondConflict(w, handlers.CodeNotAvailable, msgNotAvailable)

		case errors.Is(err, createBooking.ErrHoldNotFound):
			h.logger.Warn("POST /bookings - Hold not found: user_id=%d, hold_id=%v", userID, req.HoldID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, createBooking.ErrHoldMismatch):
			h.logger.Warn("POST /bookings - Hold mismatch: user_id=%d, error=%v", userID, err)
			handlers.RespondForbidden(w, msgHoldMismatch)

		case errors.Is(err, createBooking.ErrHoldExpired):
			h.logger.Warn("POST /bookings - Hold expired: user_id=%d, hold_id=%v", userID, req.HoldID)
			handlers.RespondConflict(w, handlers.CodeConflict, msgHoldExpired)

		case handlers.RespondPricingError(w, err):
			h.logger.Warn("POST /bookings - Booking rejected: user_id=%d, vehicle_id=%d, error=%v", userID, req.VehicleID, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, vehicle_id=%d, error=%v",
				userID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, vehicle_id=%d, total=%s",
		result.Booking.ID, userID, req.VehicleID, result.Booking.TotalAmount.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	quoteBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный период аренды, ожидается startAt и endAt в формате RFC 3339"
	msgInvalidVehicleID   = "некорректный ID машины"
	msgVehicleNotFound    = "машина не найдена"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	quote, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVehicleID)

		case errors.Is(err, quoteBooking.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case handlers.RespondPricingError(w, err):
			h.logger.Warn("POST /quotes - Quote rejected: vehicle_id=%d, error=%v", req.VehicleID, err)

		default:
			h.logger.Error("POST /quotes - Failed to build quote: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote built: vehicle_id=%d, total=%s", req.VehicleID, quote.Breakdown.Total.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromQuote(quote))
}

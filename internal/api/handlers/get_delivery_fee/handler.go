package get_delivery_fee

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgInvalidPoint      = "некорректные координаты, ожидаются lat и lng"
)

type Handler struct {
	service DeliveryService
	logger  Logger
}

func NewHandler(service DeliveryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/delivery/fee
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	locationID, err := strconv.ParseInt(q.Get("locationId"), 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /delivery/fee - Invalid location ID: %q", q.Get("locationId"))
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		h.logger.Warn("GET /delivery/fee - Invalid coordinates: lat=%q, lng=%q", q.Get("lat"), q.Get("lng"))
		handlers.RespondBadRequest(w, msgInvalidPoint)
		return
	}

	quote, err := h.service.Quote(r.Context(), locationID, domain.GeoPoint{Latitude: lat, Longitude: lng})
	if err != nil {
		if handlers.RespondPricingError(w, err) {
			h.logger.Warn("GET /delivery/fee - Rejected: location_id=%d, error=%v", locationID, err)
			return
		}
		h.logger.Error("GET /delivery/fee - Failed to quote delivery: location_id=%d, error=%v", locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromQuote(quote))
}

package get_add_ons

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

const msgCatalogUnavailable = "каталог опций временно недоступен"

type Handler struct {
	service AddOnService
	logger  Logger
}

func NewHandler(service AddOnService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Catalog(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			h.logger.Error("GET /addons - Catalog unavailable: %v", err)
			handlers.RespondUnavailable(w, handlers.CodeDataUnavailable, msgCatalogUnavailable)
			return
		}
		h.logger.Error("GET /addons - Failed to list add-ons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(items))
}

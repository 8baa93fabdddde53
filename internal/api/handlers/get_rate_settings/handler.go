package get_rate_settings

import (
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings/rates
// Настройки всегда отдаются: при недоступном хранилище используются значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings := h.service.GetSettings(r.Context())
	handlers.RespondJSON(w, http.StatusOK, FromSettings(settings))
}

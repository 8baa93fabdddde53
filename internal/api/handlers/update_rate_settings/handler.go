package update_rate_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_rate_settings"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings"
)

const (
	msgInvalidRequest = "некорректное тело запроса"
	msgUnauthorized   = "не удалось определить пользователя"
	msgInvalidAmount  = "некорректная сумма"
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

// Handle PUT /api/v1/settings/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /settings/rates - Unauthorized")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/rates - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("PUT /settings/rates - %v: user_id=%d", err, userID)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, ratesettings.ErrInvalidInput) {
			h.logger.Warn("PUT /settings/rates - Validation error: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /settings/rates - Failed to update settings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings/rates - Settings updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, get_rate_settings.FromSettings(settings))
}

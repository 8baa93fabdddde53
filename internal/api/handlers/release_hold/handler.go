package release_hold

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	releaseHold "github.com/m04kA/SMC-CarRentalService/internal/usecase/release_hold"
)

const (
	msgInvalidHoldID = "некорректный ID холда"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "холд не найден"
	msgForbidden     = "доступ запрещен"
	msgNotActive     = "холд уже освобожден или истек"
)

type Handler struct {
	useCase ReleaseHoldUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/holds/{holdId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holdID, err := uuid.Parse(mux.Vars(r)["holdId"])
	if err != nil {
		h.logger.Warn("DELETE /holds/{id} - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /holds/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.useCase.Execute(r.Context(), userID, holdID); err != nil {
		switch {
		case errors.Is(err, releaseHold.ErrHoldNotFound):
			h.logger.Warn("DELETE /holds/{id} - Hold not found: hold_id=%s", holdID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, releaseHold.ErrAccessDenied):
			h.logger.Warn("DELETE /holds/{id} - Access denied: hold_id=%s, user_id=%d", holdID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, releaseHold.ErrHoldNotActive):
			h.logger.Warn("DELETE /holds/{id} - Hold not active: hold_id=%s", holdID)
			handlers.RespondConflict(w, handlers.CodeConflict, msgNotActive)

		default:
			h.logger.Error("DELETE /holds/{id} - Failed to release hold: hold_id=%s, error=%v", holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holds/{id} - Hold released: hold_id=%s, user_id=%d", holdID, userID)
	w.WriteHeader(http.StatusNoContent)
}

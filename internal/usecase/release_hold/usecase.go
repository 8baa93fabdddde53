package release_hold

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	holdRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/hold"
)

// UseCase use case для освобождения холда клиентом
type UseCase struct {
	holdRepo HoldRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(holdRepo HoldRepository, logger Logger) *UseCase {
	return &UseCase{
		holdRepo: holdRepo,
		logger:   logger,
	}
}

// Execute помечает холд released
func (uc *UseCase) Execute(ctx context.Context, userID int64, holdID uuid.UUID) error {
	hold, err := uc.holdRepo.GetByID(ctx, holdID)
	if err != nil {
		if errors.Is(err, holdRepo.ErrHoldNotFound) {
			return ErrHoldNotFound
		}
		uc.logger.Error("ReleaseHold: failed to get hold id=%s: %v", holdID, err)
		return fmt.Errorf("%w: failed to get hold: %w", ErrInternal, err)
	}

	if hold.UserID != userID {
		uc.logger.Warn("ReleaseHold: user %d tried to release hold id=%s of user %d", userID, holdID, hold.UserID)
		return ErrAccessDenied
	}

	if hold.Status != domain.HoldStatusActive {
		return ErrHoldNotActive
	}

	err = uc.holdRepo.UpdateStatus(ctx, holdID, domain.HoldStatusActive, domain.HoldStatusReleased)
	if err != nil {
		if errors.Is(err, holdRepo.ErrStatusConflict) {
			return ErrHoldNotActive
		}
		uc.logger.Error("ReleaseHold: failed to release hold id=%s: %v", holdID, err)
		return fmt.Errorf("%w: failed to release hold: %w", ErrInternal, err)
	}

	uc.logger.Info("ReleaseHold: hold id=%s released", holdID)
	return nil
}

package create_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/vehicle"
)

// UseCase use case для блокировки машины на время оформления
type UseCase struct {
	holdRepo     HoldRepository
	vehicleRepo  VehicleRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	timeProvider TimeProvider
	ttl          time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// ttl <= 0 заменяется на domain.DefaultHoldTTL
func NewUseCase(
	holdRepo HoldRepository,
	vehicleRepo VehicleRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	ttl time.Duration,
	logger Logger,
) *UseCase {
	if ttl <= 0 {
		ttl = domain.DefaultHoldTTL
	}
	return &UseCase{
		holdRepo:     holdRepo,
		vehicleRepo:  vehicleRepo,
		availability: availability,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		ttl:          ttl,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает холд, если машина свободна с учетом буфера на уборку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}
	if err := req.Range.ValidateRental(); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result *domain.Hold

	// 2. Проверка и создание в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateHold: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateHold: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
		}
		if !vehicle.IsAvailable {
			return ErrVehicleNotAvailable
		}

		available, err := uc.availability.IsBookable(txCtx, vehicle, req.Range)
		if err != nil {
			return err
		}
		if !available {
			uc.logger.Warn("CreateHold: vehicle id=%d is not available for the period", vehicle.ID)
			return ErrVehicleNotAvailable
		}

		created, err := uc.holdRepo.Create(txCtx, &domain.Hold{
			VehicleID: vehicle.ID,
			UserID:    req.UserID,
			StartAt:   req.Range.Start,
			EndAt:     req.Range.End,
			Status:    domain.HoldStatusActive,
			ExpiresAt: now.Add(uc.ttl),
		})
		if err != nil {
			uc.logger.Error("CreateHold: failed to create hold: %v", err)
			return fmt.Errorf("%w: failed to create hold: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateHold: hold id=%s for vehicle id=%d expires at %s",
		result.ID, result.VehicleID, result.ExpiresAt.Format(domain.DateTimeFormat))

	return &Response{Hold: result}, nil
}

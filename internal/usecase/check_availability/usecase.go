package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/vehicle"
)

// UseCase use case проверки доступности одной машины
type UseCase struct {
	vehicleRepo  VehicleRepository
	availability AvailabilityChecker
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(vehicleRepo VehicleRepository, availability AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		vehicleRepo:  vehicleRepo,
		availability: availability,
		logger:       logger,
	}
}

// Execute проверяет пересечения с бронированиями и холдами
// Буфер на уборку здесь не учитывается, он проверяется при создании холда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}
	if err := req.Range.Validate(); err != nil {
		return nil, err
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %w", domain.ErrDataUnavailable, err)
	}

	if !vehicle.IsAvailable {
		return &Response{VehicleID: vehicle.ID, Available: false}, nil
	}

	available, err := uc.availability.IsAvailable(ctx, vehicle.ID, req.Range)
	if err != nil {
		return nil, err
	}

	return &Response{VehicleID: vehicle.ID, Available: available}, nil
}

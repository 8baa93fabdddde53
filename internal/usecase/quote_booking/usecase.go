package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
)

// UseCase use case предварительного расчета стоимости
type UseCase struct {
	vehicleRepo VehicleRepository
	quoter      Quoter
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(vehicleRepo VehicleRepository, quoter Quoter, logger Logger) *UseCase {
	return &UseCase{
		vehicleRepo: vehicleRepo,
		quoter:      quoter,
		logger:      logger,
	}
}

// Execute считает цену тем же расчетом, что используется при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*quoting.Quote, error) {
	if req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %w", domain.ErrDataUnavailable, err)
	}

	quote, err := uc.quoter.Build(ctx, &quoting.Request{
		Vehicle:           vehicle,
		Range:             req.Range,
		PickupLocationID:  req.PickupLocationID,
		DropoffLocationID: req.DropoffLocationID,
		ProtectionTier:    req.ProtectionTier,
		AddOnIDs:          req.AddOnIDs,
		DriverAgeBand:     req.DriverAgeBand,
		AdditionalDrivers: req.AdditionalDrivers,
		DeliveryAddress:   req.DeliveryAddress,
	})
	if err != nil {
		uc.logger.Warn("QuoteBooking: vehicle id=%d: %v", req.VehicleID, err)
		return nil, err
	}

	uc.logger.Info("QuoteBooking: vehicle id=%d, days=%d, total=%s",
		vehicle.ID, quote.Breakdown.RentalDays, quote.Breakdown.Total.StringFixed(2))

	return quote, nil
}

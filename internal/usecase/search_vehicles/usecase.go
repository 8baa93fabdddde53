package search_vehicles

import (
	"context"
	"fmt"
)

// UseCase use case поиска свободных машин
type UseCase struct {
	availability AvailabilityService
	locationRepo LocationRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, locationRepo LocationRepository, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Execute выполняет поиск
// При недоступности данных о конфликтах возвращает пустой список и ошибку domain.ErrDataUnavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchVehicles: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем локацию
	if req.LocationID != nil {
		exists, err := uc.locationRepo.Exists(ctx, *req.LocationID)
		if err != nil {
			uc.logger.Error("SearchVehicles: failed to check location id=%d: %v", *req.LocationID, err)
			return nil, fmt.Errorf("%w: failed to check location: %w", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("SearchVehicles: location id=%d not found", *req.LocationID)
			return nil, ErrLocationNotFound
		}
	}

	// 3. Резолвим доступность
	vehicles, err := uc.availability.ResolveAvailability(ctx, req.LocationID, req.Range, req.Filter)
	if err != nil {
		return &Response{Vehicles: vehicles, RentalDays: req.Range.RentalDays()}, err
	}

	return &Response{Vehicles: vehicles, RentalDays: req.Range.RentalDays()}, nil
}

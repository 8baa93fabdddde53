package delivery

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	locationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/location"
	"github.com/m04kA/SMC-CarRentalService/internal/integrations/maps"
)

// Зоны доставки
const (
	FreeRadiusKm = 10.0
	MaxRadiusKm  = 50.0
)

// StandardFee стоимость доставки от FreeRadiusKm до MaxRadiusKm
var StandardFee = decimal.RequireFromString("49.00")

// Quote расчет доставки
type Quote struct {
	LocationID int64
	DistanceKm float64
	Fee        decimal.Decimal
	// Estimated true, если расстояние посчитано по прямой без Google Maps
	Estimated bool
}

// Service считает стоимость доставки машины клиенту
type Service struct {
	locationRepo LocationRepository
	distance     DistanceClient // nil = только расчет по прямой
	logger       Logger
}

// NewService создает сервис доставки
func NewService(locationRepo LocationRepository, distance DistanceClient, logger Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		distance:     distance,
		logger:       logger,
	}
}

// FeeForDistance стоимость доставки по расстоянию
// До 10 км бесплатно, до 50 км фиксированная ставка, дальше доставки нет
func FeeForDistance(km float64) (decimal.Decimal, error) {
	switch {
	case km < 0 || math.IsNaN(km):
		return decimal.Zero, fmt.Errorf("%w: negative distance", ErrInvalidInput)
	case km <= FreeRadiusKm:
		return decimal.Zero, nil
	case km <= MaxRadiusKm:
		return StandardFee, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %.1f km exceeds %.0f km", ErrDeliveryUnavailable, km, MaxRadiusKm)
}

// Quote считает доставку от локации выдачи до адреса клиента
func (s *Service) Quote(ctx context.Context, locationID int64, destination domain.GeoPoint) (*Quote, error) {
	// 1. Валидация координат
	if !validPoint(destination) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	// 2. Локация выдачи
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Quote: location id=%d not found", locationID)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("Quote: failed to get location id=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %w", ErrInternal, err)
	}

	// 3. Расстояние
	km, estimated, err := s.distanceKm(ctx, loc.Point(), destination)
	if err != nil {
		return nil, err
	}

	// 4. Тариф
	fee, err := FeeForDistance(km)
	if err != nil {
		s.logger.Info("Quote: delivery from location id=%d unavailable: %v", locationID, err)
		return nil, err
	}

	return &Quote{
		LocationID: locationID,
		DistanceKm: km,
		Fee:        fee,
		Estimated:  estimated,
	}, nil
}

func (s *Service) distanceKm(ctx context.Context, origin, destination domain.GeoPoint) (float64, bool, error) {
	if s.distance == nil {
		return haversineKm(origin, destination), true, nil
	}

	route, err := s.distance.DrivingDistanceWithGracefulDegradation(ctx, origin, destination)
	if err == nil {
		return route.Kilometers(), false, nil
	}
	if errors.Is(err, maps.ErrRouteNotFound) {
		return 0, false, fmt.Errorf("%w: no driving route", ErrDeliveryUnavailable)
	}

	s.logger.Warn("distanceKm: falling back to straight-line distance: %v", err)
	return haversineKm(origin, destination), true, nil
}

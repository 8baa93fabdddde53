package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

const (
	operationSearch = "search"
	operationCheck  = "check"
)

// bufferLookback глубина выборки прошлых бронирований для проверки буфера на уборку
const bufferLookback = time.Duration(domain.MaxCleaningBufferHours) * time.Hour

// Service определяет доступность машин
// При недоступности данных о конфликтах отвечает "недоступно", а не пропускает машину
type Service struct {
	vehicleRepo  VehicleRepository
	bookingRepo  BookingRepository
	holdRepo     HoldRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис доступности
func NewService(
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		bookingRepo:  bookingRepo,
		holdRepo:     holdRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ResolveAvailability возвращает машины, свободные на весь интервал
// Если конфликты получить не удалось, возвращает пустой список и ошибку domain.ErrDataUnavailable
func (s *Service) ResolveAvailability(ctx context.Context, locationID *int64, r domain.DateRange, filter *domain.VehicleFilter) ([]*domain.Vehicle, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.ListCandidates(ctx, locationID, filter)
	if err != nil {
		return s.failClosedSearch("vehicles", err)
	}
	if len(vehicles) == 0 {
		return []*domain.Vehicle{}, nil
	}

	ids := vehicleIDs(vehicles)
	now := s.timeProvider.Now()

	bookings, err := s.bookingRepo.ListForAvailability(ctx, ids, r, bufferLookback)
	if err != nil {
		return s.failClosedSearch("bookings", err)
	}

	holds, err := s.holdRepo.ListActiveOverlapping(ctx, ids, r, now)
	if err != nil {
		return s.failClosedSearch("holds", err)
	}

	available := Resolve(Query{
		LocationID: locationID,
		Range:      r,
		Filter:     filter,
		Now:        now,
	}, Snapshot{
		Vehicles: vehicles,
		Bookings: bookings,
		Holds:    holds,
	})

	s.logger.Info("ResolveAvailability: %d of %d candidates available", len(available), len(vehicles))
	return available, nil
}

// IsAvailable проверяет одну машину на пересечения с бронированиями и холдами
func (s *Service) IsAvailable(ctx context.Context, vehicleID int64, r domain.DateRange) (bool, error) {
	return s.IsAvailableExcludingHold(ctx, vehicleID, r, nil)
}

// IsAvailableExcludingHold то же, что IsAvailable, но не учитывает холд holdID
// Используется при подтверждении заказа, который держит собственный холд
func (s *Service) IsAvailableExcludingHold(ctx context.Context, vehicleID int64, r domain.DateRange, holdID *uuid.UUID) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	ids := []int64{vehicleID}
	now := s.timeProvider.Now()

	bookings, err := s.bookingRepo.ListForAvailability(ctx, ids, r, 0)
	if err != nil {
		return s.failClosedCheck(vehicleID, "bookings", err)
	}

	holds, err := s.holdRepo.ListActiveOverlapping(ctx, ids, r, now)
	if err != nil {
		return s.failClosedCheck(vehicleID, "holds", err)
	}

	return IsFree(r, bookings, holds, now, holdID), nil
}

// IsBookable проверяет одну машину по всем правилам поиска, включая буфер на уборку
// Используется при создании холда
func (s *Service) IsBookable(ctx context.Context, vehicle *domain.Vehicle, r domain.DateRange) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	ids := []int64{vehicle.ID}
	now := s.timeProvider.Now()

	bookings, err := s.bookingRepo.ListForAvailability(ctx, ids, r, bufferLookback)
	if err != nil {
		return s.failClosedCheck(vehicle.ID, "bookings", err)
	}

	holds, err := s.holdRepo.ListActiveOverlapping(ctx, ids, r, now)
	if err != nil {
		return s.failClosedCheck(vehicle.ID, "holds", err)
	}

	available := Resolve(Query{Range: r, Now: now}, Snapshot{
		Vehicles: []*domain.Vehicle{vehicle},
		Bookings: bookings,
		Holds:    holds,
	})

	return len(available) == 1, nil
}

func (s *Service) failClosedSearch(source string, err error) ([]*domain.Vehicle, error) {
	s.logger.Error("ResolveAvailability: failed to fetch %s, failing closed: %v", source, err)
	s.metrics.IncAvailabilityFailClosed(operationSearch)
	return []*domain.Vehicle{}, fmt.Errorf("%w: failed to fetch %s: %w", domain.ErrDataUnavailable, source, err)
}

func (s *Service) failClosedCheck(vehicleID int64, source string, err error) (bool, error) {
	s.logger.Error("IsAvailable: failed to fetch %s for vehicle id=%d, failing closed: %v", source, vehicleID, err)
	s.metrics.IncAvailabilityFailClosed(operationCheck)
	return false, fmt.Errorf("%w: failed to fetch %s: %w", domain.ErrDataUnavailable, source, err)
}

func vehicleIDs(vehicles []*domain.Vehicle) []int64 {
	ids := make([]int64, 0, len(vehicles))
	for _, v := range vehicles {
		ids = append(ids, v.ID)
	}
	return ids
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/booking"
	holdRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/hold"
	vehicleRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-CarRentalService/internal/service/pricing"
	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
)

const metricsOperation = "create_booking"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	holdRepo     HoldRepository
	availability AvailabilityChecker
	quoter       Quoter
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	holdRepo HoldRepository,
	availability AvailabilityChecker,
	quoter Quoter,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		holdRepo:     holdRepo,
		availability: availability,
		quoter:       quoter,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vehicle=%d, start=%s, end=%s",
		req.UserID, req.VehicleID, req.Range.Start.Format(domain.DateTimeFormat), req.Range.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *Response

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем машину с блокировкой строки
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
		}
		if !vehicle.IsAvailable {
			uc.logger.Warn("CreateBooking: vehicle id=%d is out of service", req.VehicleID)
			return ErrVehicleNotAvailable
		}

		// 3.2. Проверяем холд клиента
		if req.HoldID != nil {
			hold, err := uc.holdRepo.GetByID(txCtx, *req.HoldID)
			if err != nil {
				if errors.Is(err, holdRepo.ErrHoldNotFound) {
					uc.logger.Warn("CreateBooking: hold id=%s not found", req.HoldID)
					return ErrHoldNotFound
				}
				uc.logger.Error("CreateBooking: failed to get hold id=%s: %v", req.HoldID, err)
				return fmt.Errorf("%w: failed to get hold: %w", ErrInternal, err)
			}
			if err := validateHold(hold, req); err != nil {
				uc.logger.Warn("CreateBooking: hold id=%s rejected: %v", req.HoldID, err)
				return err
			}
			if !hold.IsActiveAt(now) {
				uc.logger.Warn("CreateBooking: hold id=%s is %s, expires_at=%s", req.HoldID, hold.Status, hold.ExpiresAt.Format(domain.DateTimeFormat))
				return ErrHoldExpired
			}
		}

		// 3.3. Повторная проверка доступности (бронирования блокируются FOR UPDATE)
		// С холдом буфер уже проверен при его создании, без холда проверяем по всем правилам
		var available bool
		if req.HoldID != nil {
			available, err = uc.availability.IsAvailableExcludingHold(txCtx, vehicle.ID, req.Range, req.HoldID)
		} else {
			available, err = uc.availability.IsBookable(txCtx, vehicle, req.Range)
		}
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed for vehicle id=%d: %v", vehicle.ID, err)
			return err
		}
		if !available {
			uc.logger.Warn("CreateBooking: vehicle id=%d is not available for the period", vehicle.ID)
			return ErrVehicleNotAvailable
		}

		// 3.4. Пересчитываем цену с нуля по каноническим данным
		quote, err := uc.quoter.Build(txCtx, &quoting.Request{
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
			uc.logger.Warn("CreateBooking: failed to price vehicle id=%d: %v", vehicle.ID, err)
			return err
		}

		// 3.5. Сверяем сумму клиента
		if err := pricing.VerifyClientTotal(req.ClientTotal, quote.Breakdown); err != nil {
			uc.metrics.IncPriceMismatch(metricsOperation)
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 3.6. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, toBooking(req, quote.Breakdown, quote.PickupLocationID, quote.DropoffLocationID))
		if err != nil {
			if errors.Is(err, bookingRepo.ErrVehicleNotAvailable) {
				uc.logger.Warn("CreateBooking: overlap rejected by database for vehicle id=%d", vehicle.ID)
				return ErrVehicleNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 3.7. Закрываем холд
		if req.HoldID != nil {
			if err := uc.holdRepo.UpdateStatus(txCtx, *req.HoldID, domain.HoldStatusActive, domain.HoldStatusConverted); err != nil {
				if errors.Is(err, holdRepo.ErrStatusConflict) {
					uc.logger.Warn("CreateBooking: hold id=%s changed concurrently", req.HoldID)
					return ErrHoldExpired
				}
				uc.logger.Error("CreateBooking: failed to convert hold id=%s: %v", req.HoldID, err)
				return fmt.Errorf("%w: failed to convert hold: %w", ErrInternal, err)
			}
		}

		result = &Response{Booking: created, Breakdown: quote.Breakdown}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s",
		result.Booking.ID, result.Booking.TotalAmount.StringFixed(2))

	return result, nil
}

package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// VehicleRepository интерфейс репозитория машин
// Внутри транзакции GetByID блокирует строку машины (FOR UPDATE)
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Hold, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.HoldStatus) error
}

// AvailabilityChecker интерфейс проверки доступности
type AvailabilityChecker interface {
	IsAvailableExcludingHold(ctx context.Context, vehicleID int64, r domain.DateRange, holdID *uuid.UUID) (bool, error)
	IsBookable(ctx context.Context, vehicle *domain.Vehicle, r domain.DateRange) (bool, error)
}

// Quoter интерфейс расчета стоимости
type Quoter interface {
	Build(ctx context.Context, req *quoting.Request) (*quoting.Quote, error)
}

// Metrics интерфейс для метрик
type Metrics interface {
	IncPriceMismatch(operation string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

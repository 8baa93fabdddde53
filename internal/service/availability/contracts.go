package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	ListCandidates(ctx context.Context, locationID *int64, filter *domain.VehicleFilter) ([]*domain.Vehicle, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListForAvailability(ctx context.Context, vehicleIDs []int64, window domain.DateRange, lookback time.Duration) ([]*domain.Booking, error)
}

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	ListActiveOverlapping(ctx context.Context, vehicleIDs []int64, window domain.DateRange, now time.Time) ([]*domain.Hold, error)
}

// Metrics счетчики fail-closed ответов
type Metrics interface {
	IncAvailabilityFailClosed(operation string)
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

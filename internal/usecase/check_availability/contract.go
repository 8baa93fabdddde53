package check_availability

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// AvailabilityChecker интерфейс проверки доступности одной машины
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, vehicleID int64, r domain.DateRange) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

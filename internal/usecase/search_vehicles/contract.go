package search_vehicles

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	ResolveAvailability(ctx context.Context, locationID *int64, r domain.DateRange, filter *domain.VehicleFilter) ([]*domain.Vehicle, error)
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

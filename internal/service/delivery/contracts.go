package delivery

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/integrations/maps"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// DistanceClient интерфейс клиента расстояний по дороге
type DistanceClient interface {
	DrivingDistanceWithGracefulDegradation(ctx context.Context, origin, destination domain.GeoPoint) (*maps.RouteDistance, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

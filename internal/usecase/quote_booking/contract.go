package quote_booking

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
)

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Quoter интерфейс расчета стоимости
type Quoter interface {
	Build(ctx context.Context, req *quoting.Request) (*quoting.Quote, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

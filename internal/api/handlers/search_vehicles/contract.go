package search_vehicles

import (
	"context"

	searchVehicles "github.com/m04kA/SMC-CarRentalService/internal/usecase/search_vehicles"
)

type SearchVehiclesUseCase interface {
	Execute(ctx context.Context, req *searchVehicles.Request) (*searchVehicles.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package search_vehicles

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса поиска
type Request struct {
	LocationID *int64 // nil = все локации
	Range      domain.DateRange
	Filter     *domain.VehicleFilter
}

// Response свободные машины, по возрастанию дневной ставки
type Response struct {
	Vehicles   []*domain.Vehicle
	RentalDays int
}

package search_vehicles

import (
	"net/url"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	searchVehicles "github.com/m04kA/SMC-CarRentalService/internal/usecase/search_vehicles"
)

// parseFilter читает локацию и фильтры из query
func parseFilter(q url.Values) (*searchVehicles.Request, error) {
	locationID, err := handlers.ParseOptionalInt64(q, "locationId")
	if err != nil {
		return nil, err
	}
	minPrice, err := handlers.ParseOptionalDecimal(q, "minPrice")
	if err != nil {
		return nil, err
	}
	maxPrice, err := handlers.ParseOptionalDecimal(q, "maxPrice")
	if err != nil {
		return nil, err
	}
	seats, err := handlers.ParseOptionalInt(q, "seats")
	if err != nil {
		return nil, err
	}

	return &searchVehicles.Request{
		LocationID: locationID,
		Filter: &domain.VehicleFilter{
			Category:     handlers.ParseOptionalString(q, "category"),
			MinPrice:     minPrice,
			MaxPrice:     maxPrice,
			Seats:        seats,
			Transmission: handlers.ParseOptionalString(q, "transmission"),
			FuelType:     handlers.ParseOptionalString(q, "fuelType"),
		},
	}, nil
}

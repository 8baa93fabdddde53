package search_vehicles

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	searchVehicles "github.com/m04kA/SMC-CarRentalService/internal/usecase/search_vehicles"
)

// VehicleResponse свободная машина
type VehicleResponse struct {
	ID              int64  `json:"id"`
	LocationID      *int64 `json:"locationId,omitempty"`
	Category        string `json:"category"`
	ProtectionGroup int    `json:"protectionGroup"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	DailyRate       string `json:"dailyRate"`
	Seats           int    `json:"seats"`
	FuelType        string `json:"fuelType"`
	Transmission    string `json:"transmission"`
	BaseTotal       string `json:"baseTotal"` // дневная ставка x дни, без скидок и сборов
}

// SearchResponse ответ поиска
type SearchResponse struct {
	RentalDays int               `json:"rentalDays"`
	Vehicles   []VehicleResponse `json:"vehicles"`
}

// FromUseCaseResponse конвертирует результат поиска
func FromUseCaseResponse(resp *searchVehicles.Response) *SearchResponse {
	out := &SearchResponse{
		RentalDays: resp.RentalDays,
		Vehicles:   make([]VehicleResponse, 0, len(resp.Vehicles)),
	}
	days := decimal.NewFromInt(int64(resp.RentalDays))
	for _, v := range resp.Vehicles {
		out.Vehicles = append(out.Vehicles, fromVehicle(v, days))
	}
	return out
}

func fromVehicle(v *domain.Vehicle, days decimal.Decimal) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID,
		LocationID:      v.LocationID,
		Category:        v.CategoryName,
		ProtectionGroup: int(v.ProtectionGroup),
		Make:            v.Make,
		Model:           v.Model,
		DailyRate:       v.DailyRate.StringFixed(2),
		Seats:           v.Seats,
		FuelType:        v.FuelType,
		Transmission:    v.Transmission,
		BaseTotal:       v.DailyRate.Mul(days).StringFixed(2),
	}
}

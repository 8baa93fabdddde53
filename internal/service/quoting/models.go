package quoting

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/addons"
	"github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
)

// Request канонические входные данные расчета
type Request struct {
	Vehicle           *domain.Vehicle
	Range             domain.DateRange
	PickupLocationID  *int64 // nil = локация машины
	DropoffLocationID *int64 // nil = та же, что и получение
	ProtectionTier    domain.ProtectionTier
	AddOnIDs          []int64
	DriverAgeBand     domain.DriverAgeBand
	AdditionalDrivers []domain.DriverAgeBand
	DeliveryAddress   *domain.GeoPoint
}

// Quote результат расчета
type Quote struct {
	Breakdown  *domain.PriceBreakdown
	Protection *domain.ProtectionPlan
	AddOns     *addons.Selection
	Delivery   *delivery.Quote

	PickupLocationID  *int64
	DropoffLocationID *int64
}

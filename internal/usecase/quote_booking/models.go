package quote_booking

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса предварительного расчета
type Request struct {
	VehicleID         int64
	Range             domain.DateRange
	PickupLocationID  *int64
	DropoffLocationID *int64
	ProtectionTier    domain.ProtectionTier
	AddOnIDs          []int64
	DriverAgeBand     domain.DriverAgeBand
	AdditionalDrivers []domain.DriverAgeBand
	DeliveryAddress   *domain.GeoPoint
}

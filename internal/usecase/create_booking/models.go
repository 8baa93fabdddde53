package create_booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64      // ID пользователя
	VehicleID int64      // ID машины
	HoldID    *uuid.UUID // холд, полученный на шаге оформления (опционально)
	Range     domain.DateRange

	PickupLocationID  *int64
	DropoffLocationID *int64
	ProtectionTier    domain.ProtectionTier
	AddOnIDs          []int64
	DriverAgeBand     domain.DriverAgeBand
	AdditionalDrivers []domain.DriverAgeBand
	DeliveryAddress   *domain.GeoPoint

	ClientTotal decimal.Decimal // сумма, которую видел клиент
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking   *domain.Booking
	Breakdown *domain.PriceBreakdown
}

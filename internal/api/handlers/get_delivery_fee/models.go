package get_delivery_fee

import "github.com/m04kA/SMC-CarRentalService/internal/service/delivery"

// DeliveryFeeResponse стоимость доставки от локации до адреса
type DeliveryFeeResponse struct {
	LocationID int64   `json:"locationId"`
	DistanceKm float64 `json:"distanceKm"`
	Fee        string  `json:"fee"`
	Estimated  bool    `json:"estimated"`
}

// FromQuote конвертирует расчет доставки
func FromQuote(q *delivery.Quote) DeliveryFeeResponse {
	return DeliveryFeeResponse{
		LocationID: q.LocationID,
		DistanceKm: q.DistanceKm,
		Fee:        q.Fee.StringFixed(2),
		Estimated:  q.Estimated,
	}
}

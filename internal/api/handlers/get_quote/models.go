package get_quote

import (
	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
	quoteBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/quote_booking"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	handlers.RentalRequest
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteBooking.Request, error) {
	dateRange, err := r.Range()
	if err != nil {
		return nil, err
	}
	band, extra := r.Drivers()

	return &quoteBooking.Request{
		VehicleID:         r.VehicleID,
		Range:             dateRange,
		PickupLocationID:  r.PickupLocationID,
		DropoffLocationID: r.DropoffLocationID,
		ProtectionTier:    r.Tier(),
		AddOnIDs:          r.AddOnIDs,
		DriverAgeBand:     band,
		AdditionalDrivers: extra,
		DeliveryAddress:   r.Delivery(),
	}, nil
}

// ProtectionResponse выбранный план защиты
type ProtectionResponse struct {
	Tier       string `json:"tier"`
	DailyRate  string `json:"dailyRate"`
	Deductible string `json:"deductible"`
}

// AddOnResponse выбранная опция
type AddOnResponse struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// DeliveryResponse стоимость доставки
type DeliveryResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Fee        string  `json:"fee"`
	Estimated  bool    `json:"estimated"`
}

// QuoteResponse предварительный расчет
type QuoteResponse struct {
	Breakdown  *handlers.PriceBreakdownResponse `json:"breakdown"`
	Protection ProtectionResponse               `json:"protection"`
	AddOns     []AddOnResponse                  `json:"addOns"`
	Delivery   *DeliveryResponse                `json:"delivery,omitempty"`
}

// FromQuote конвертирует расчет в HTTP ответ
func FromQuote(q *quoting.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		Breakdown: handlers.FromBreakdown(q.Breakdown),
		AddOns:    []AddOnResponse{},
	}

	if q.Protection != nil {
		resp.Protection = ProtectionResponse{
			Tier:       string(q.Protection.Tier),
			DailyRate:  q.Protection.DailyRate.StringFixed(2),
			Deductible: q.Protection.Deductible,
		}
	}

	if q.AddOns != nil {
		for _, line := range q.AddOns.Lines {
			resp.AddOns = append(resp.AddOns, AddOnResponse{
				ID:     line.AddOn.ID,
				Code:   line.AddOn.Code,
				Name:   line.AddOn.Name,
				Amount: line.Amount.StringFixed(2),
			})
		}
	}

	if q.Delivery != nil {
		resp.Delivery = &DeliveryResponse{
			DistanceKm: q.Delivery.DistanceKm,
			Fee:        q.Delivery.Fee.StringFixed(2),
			Estimated:  q.Delivery.Estimated,
		}
	}

	return resp
}

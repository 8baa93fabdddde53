package create_booking

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	handlers.RentalRequest
	HoldID *string `json:"holdId,omitempty"`
	Total  string  `json:"total"` // сумма, показанная клиенту, "209.10"
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking   *models.BookingResponse          `json:"booking"`
	Breakdown *handlers.PriceBreakdownResponse `json:"breakdown"`
}

// PriceMismatchResponse ответ при расхождении суммы клиента с пересчетом
type PriceMismatchResponse struct {
	handlers.ErrorResponse
	ExpectedTotal  string                           `json:"expectedTotal"`
	SubmittedTotal string                           `json:"submittedTotal"`
	Breakdown      *handlers.PriceBreakdownResponse `json:"breakdown"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	dateRange, err := r.Range()
	if err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(r.Total)
	if err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}

	var holdID *uuid.UUID
	if r.HoldID != nil {
		id, err := uuid.Parse(*r.HoldID)
		if err != nil {
			return nil, fmt.Errorf("holdId: %w", err)
		}
		holdID = &id
	}

	band, extra := r.Drivers()

	return &createBooking.Request{
		UserID:            userID,
		VehicleID:         r.VehicleID,
		HoldID:            holdID,
		Range:             dateRange,
		PickupLocationID:  r.PickupLocationID,
		DropoffLocationID: r.DropoffLocationID,
		ProtectionTier:    r.Tier(),
		AddOnIDs:          r.AddOnIDs,
		DriverAgeBand:     band,
		AdditionalDrivers: extra,
		DeliveryAddress:   r.Delivery(),
		ClientTotal:       total,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:   models.FromDomainBooking(resp.Booking),
		Breakdown: handlers.FromBreakdown(resp.Breakdown),
	}
}

// FromPriceMismatch собирает тело ответа 409 с актуальным расчетом
func FromPriceMismatch(e *domain.PriceMismatchError, message string) *PriceMismatchResponse {
	return &PriceMismatchResponse{
		ErrorResponse: handlers.ErrorResponse{
			Code:    handlers.CodePriceMismatch,
			Message: message,
		},
		ExpectedTotal:  e.Expected.StringFixed(2),
		SubmittedTotal: e.Submitted.StringFixed(2),
		Breakdown:      handlers.FromBreakdown(e.Breakdown),
	}
}

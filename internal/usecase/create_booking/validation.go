package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.ClientTotal.IsNegative() {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}

	if !req.ProtectionTier.IsValid() {
		return fmt.Errorf("%w: unknown protection tier %q", ErrInvalidInput, req.ProtectionTier)
	}

	return req.Range.ValidateRental()
}

// validateHold проверяет, что холд выдан этому пользователю на эту машину и период
func validateHold(hold *domain.Hold, req *Request) error {
	if hold.UserID != req.UserID || hold.VehicleID != req.VehicleID {
		return ErrHoldMismatch
	}

	if !hold.StartAt.Equal(req.Range.Start) || !hold.EndAt.Equal(req.Range.End) {
		return fmt.Errorf("%w: period differs from the hold", ErrHoldMismatch)
	}

	return nil
}

// toBooking собирает бронирование по итогам расчета
func toBooking(req *Request, quote *domain.PriceBreakdown, pickup, dropoff *int64) *domain.Booking {
	return &domain.Booking{
		UserID:            req.UserID,
		VehicleID:         req.VehicleID,
		HoldID:            req.HoldID,
		PickupLocationID:  pickup,
		DropoffLocationID: dropoff,
		StartAt:           req.Range.Start,
		EndAt:             req.Range.End,
		Status:            domain.StatusConfirmed,
		ProtectionTier:    req.ProtectionTier,
		TotalAmount:       quote.Total.Round(2),
		TotalDays:         quote.RentalDays,
		DepositAmount:     quote.Deposit.Round(2),
	}
}

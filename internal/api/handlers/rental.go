package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// GeoPointRequest координаты адреса доставки
type GeoPointRequest struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// RentalRequest параметры аренды, общие для расчета и бронирования
type RentalRequest struct {
	VehicleID         int64            `json:"vehicleId"`
	StartAt           string           `json:"startAt"` // RFC 3339
	EndAt             string           `json:"endAt"`
	PickupLocationID  *int64           `json:"pickupLocationId,omitempty"`
	DropoffLocationID *int64           `json:"dropoffLocationId,omitempty"`
	ProtectionTier    string           `json:"protectionTier"`
	AddOnIDs          []int64          `json:"addOnIds,omitempty"`
	DriverAgeBand     string           `json:"driverAgeBand,omitempty"`
	AdditionalDrivers []string         `json:"additionalDrivers,omitempty"`
	DeliveryAddress   *GeoPointRequest `json:"deliveryAddress,omitempty"`
}

// Range разбирает интервал аренды
func (r *RentalRequest) Range() (domain.DateRange, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartAt)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("startAt: %w", err)
	}
	end, err := time.Parse(domain.DateTimeFormat, r.EndAt)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("endAt: %w", err)
	}
	return domain.DateRange{Start: start, End: end}, nil
}

// Tier уровень защиты, по умолчанию none
func (r *RentalRequest) Tier() domain.ProtectionTier {
	if r.ProtectionTier == "" {
		return domain.ProtectionNone
	}
	return domain.ProtectionTier(r.ProtectionTier)
}

// Drivers возрастные группы основного и дополнительных водителей
func (r *RentalRequest) Drivers() (domain.DriverAgeBand, []domain.DriverAgeBand) {
	extra := make([]domain.DriverAgeBand, len(r.AdditionalDrivers))
	for i, band := range r.AdditionalDrivers {
		extra[i] = domain.DriverAgeBand(band)
	}
	return domain.DriverAgeBand(r.DriverAgeBand), extra
}

// Delivery адрес доставки или nil
func (r *RentalRequest) Delivery() *domain.GeoPoint {
	if r.DeliveryAddress == nil {
		return nil
	}
	return &domain.GeoPoint{Latitude: r.DeliveryAddress.Latitude, Longitude: r.DeliveryAddress.Longitude}
}

package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID     int64      `json:"userId"`
	Status     string     `json:"status"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"` // фактический возврат, для completed
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"userId"`
	VehicleID         int64   `json:"vehicleId"`
	HoldID            *string `json:"holdId,omitempty"`
	PickupLocationID  *int64  `json:"pickupLocationId,omitempty"`
	DropoffLocationID *int64  `json:"dropoffLocationId,omitempty"`
	StartAt           string  `json:"startAt"` // ISO 8601
	EndAt             string  `json:"endAt"`
	Status            string  `json:"status"`

	ProtectionTier string `json:"protectionTier"`
	TotalAmount    string `json:"totalAmount"` // "387.15"
	TotalDays      int    `json:"totalDays"`
	DepositAmount  string `json:"depositAmount"`

	ReturnedAt         *string `json:"returnedAt,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		VehicleID:          b.VehicleID,
		PickupLocationID:   b.PickupLocationID,
		DropoffLocationID:  b.DropoffLocationID,
		StartAt:            b.StartAt.Format(domain.DateTimeFormat),
		EndAt:              b.EndAt.Format(domain.DateTimeFormat),
		Status:             string(b.Status),
		ProtectionTier:     string(b.ProtectionTier),
		TotalAmount:        b.TotalAmount.StringFixed(2),
		TotalDays:          b.TotalDays,
		DepositAmount:      b.DepositAmount.StringFixed(2),
		ReturnedAt:         formatTime(b.ReturnedAt),
		CancellationReason: b.CancellationReason,
		CancelledAt:        formatTime(b.CancelledAt),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.HoldID != nil {
		holdID := b.HoldID.String()
		resp.HoldID = &holdID
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateTimeFormat)
	return &s
}

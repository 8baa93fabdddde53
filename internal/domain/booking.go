package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active" // машина выдана клиенту
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking бронирование машины
type Booking struct {
	ID                int64
	UserID            int64
	VehicleID         int64
	HoldID            *uuid.UUID
	PickupLocationID  *int64
	DropoffLocationID *int64
	StartAt           time.Time
	EndAt             time.Time
	Status            BookingStatus

	// Итоги расчета цены, по ним сервер сверяет сумму клиента
	ProtectionTier ProtectionTier
	TotalAmount    decimal.Decimal
	TotalDays      int
	DepositAmount  decimal.Decimal

	ReturnedAt         *time.Time // фактическое время возврата
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window интервал бронирования
func (b *Booking) Window() DateRange {
	return DateRange{Start: b.StartAt, End: b.EndAt}
}

// EffectiveEnd фактическое время возврата, если оно записано, иначе плановое
func (b *Booking) EffectiveEnd() time.Time {
	if b.ReturnedAt != nil {
		return *b.ReturnedAt
	}
	return b.EndAt
}

// IsBlocking true, если бронирование занимает машину на свой интервал
func (b *Booking) IsBlocking() bool {
	return containsStatus(BlockingStatuses, b.Status)
}

// HasCleaningBuffer true, если после бронирования действует буфер на уборку
func (b *Booking) HasCleaningBuffer() bool {
	return containsStatus(BufferStatuses, b.Status)
}

// CanBeCancelled отменить можно только до выдачи машины
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость смены статуса
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusActive || next == StatusCancelled
	case StatusActive:
		return next == StatusCompleted
	}
	return false
}

func containsStatus(list []BookingStatus, s BookingStatus) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

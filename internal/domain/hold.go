package domain

import (
	"time"

	"github.com/google/uuid"
)

// HoldStatus статус холда
type HoldStatus string

const (
	HoldStatusActive    HoldStatus = "active"
	HoldStatusReleased  HoldStatus = "released"
	HoldStatusConverted HoldStatus = "converted" // по холду создано бронирование
	HoldStatusExpired   HoldStatus = "expired"
)

// Hold короткая блокировка машины на время оформления заказа
type Hold struct {
	ID        uuid.UUID
	VehicleID int64
	UserID    int64
	StartAt   time.Time
	EndAt     time.Time
	Status    HoldStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsActiveAt true, если холд активен и еще не истек
// Истекший холд не блокирует машину, даже если фоновая задача еще не пометила его
func (h *Hold) IsActiveAt(now time.Time) bool {
	return h.Status == HoldStatusActive && h.ExpiresAt.After(now)
}

// Window интервал холда
func (h *Hold) Window() DateRange {
	return DateRange{Start: h.StartAt, End: h.EndAt}
}

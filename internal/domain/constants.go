package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ограничения аренды
const (
	MinRentalDays = 1
	MaxRentalDays = 30

	// DefaultCleaningBufferHours буфер на уборку после возврата, если у машины не задан свой
	DefaultCleaningBufferHours = 2
	// MaxCleaningBufferHours верхняя граница буфера, используется как глубина выборки прошлых бронирований
	MaxCleaningBufferHours = 72

	MaxAdditionalDrivers        = 4
	MaxCancellationReasonLength = 500
)

// DefaultHoldTTL время жизни холда по умолчанию
const DefaultHoldTTL = 15 * time.Minute

// Форматы даты и времени
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

// Значения по умолчанию для настраиваемых тарифов (группа 1 и водители)
var (
	DefaultGroup1BasicRate   = decimal.RequireFromString("19.99")
	DefaultGroup1SmartRate   = decimal.RequireFromString("24.99")
	DefaultGroup1PremiumRate = decimal.RequireFromString("29.99")

	DefaultYoungDriverDaily           = decimal.RequireFromString("15.00")
	DefaultAdditionalDriverDaily      = decimal.RequireFromString("14.99")
	DefaultYoungAdditionalDriverDaily = decimal.RequireFromString("15.00")

	DefaultDropoffFee      = decimal.RequireFromString("50.00")
	DefaultSecurityDeposit = decimal.RequireFromString("250.00")
)

// Фиксированные тарифы защиты для групп 2 и 3 (не настраиваются администратором)
var (
	Group2Rates = ProtectionRates{
		Basic:   decimal.RequireFromString("24.99"),
		Smart:   decimal.RequireFromString("29.99"),
		Premium: decimal.RequireFromString("34.99"),
	}
	Group3Rates = ProtectionRates{
		Basic:   decimal.RequireFromString("29.99"),
		Smart:   decimal.RequireFromString("36.99"),
		Premium: decimal.RequireFromString("44.99"),
	}
)

// BlockingStatuses статусы бронирований, которые занимают машину на свой интервал
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
}

// BufferStatuses статусы бронирований, после которых действует буфер на уборку
var BufferStatuses = []BookingStatus{
	StatusActive,
	StatusCompleted,
}

// InactiveStatuses статусы, которые не влияют на доступность
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

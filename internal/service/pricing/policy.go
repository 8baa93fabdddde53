package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeekendPolicy способ начисления доплаты за выходные
type WeekendPolicy string

const (
	// WeekendPerDay доплата за каждый день аренды, выпадающий на Пт, Сб или Вс
	WeekendPerDay WeekendPolicy = "per_day"
	// WeekendPickupDay доплата за все дни, если машину забирают в Пт, Сб или Вс
	WeekendPickupDay WeekendPolicy = "pickup_day"
)

// ParseWeekendPolicy разбирает значение из конфигурации
func ParseWeekendPolicy(s string) (WeekendPolicy, error) {
	switch WeekendPolicy(s) {
	case WeekendPerDay, WeekendPickupDay:
		return WeekendPolicy(s), nil
	}
	return "", fmt.Errorf("unknown weekend policy %q", s)
}

// Policy ставки и правила расчета
type Policy struct {
	WeekendPolicy        WeekendPolicy
	WeekendSurchargeRate decimal.Decimal

	WeeklyDiscountDays  int
	WeeklyDiscountRate  decimal.Decimal
	MonthlyDiscountDays int
	MonthlyDiscountRate decimal.Decimal

	// Регуляторные сборы за день
	PVRTDaily            decimal.Decimal // Passenger Vehicle Rental Tax
	RentalSurchargeDaily decimal.Decimal

	PSTRate decimal.Decimal
	GSTRate decimal.Decimal
	// TaxRegulatoryFees включать ли регуляторные сборы в базу PST/GST
	TaxRegulatoryFees bool
}

// DefaultPolicy правила по умолчанию
func DefaultPolicy() Policy {
	return Policy{
		WeekendPolicy:        WeekendPerDay,
		WeekendSurchargeRate: decimal.RequireFromString("0.15"),

		WeeklyDiscountDays:  7,
		WeeklyDiscountRate:  decimal.RequireFromString("0.10"),
		MonthlyDiscountDays: 21,
		MonthlyDiscountRate: decimal.RequireFromString("0.20"),

		PVRTDaily:            decimal.RequireFromString("1.50"),
		RentalSurchargeDaily: decimal.RequireFromString("1.00"),

		PSTRate: decimal.RequireFromString("0.07"),
		GSTRate: decimal.RequireFromString("0.05"),
	}
}

package domain

import "github.com/shopspring/decimal"

// AddOnPricing способ тарификации дополнительной опции
type AddOnPricing string

const (
	AddOnPerDay  AddOnPricing = "per_day"
	AddOnOneTime AddOnPricing = "one_time"
	AddOnFuel    AddOnPricing = "fuel" // Price = цена за литр, умножается на объем бака
)

// AddOn дополнительная опция (детское кресло, GPS, полный бак)
type AddOn struct {
	ID       int64
	Code     string
	Name     string
	Pricing  AddOnPricing
	Price    decimal.Decimal
	IsActive bool
}

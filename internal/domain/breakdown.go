package domain

import "github.com/shopspring/decimal"

// LineItemCode код строки расчета
type LineItemCode string

const (
	LineVehicleRental          LineItemCode = "vehicle_rental"
	LineWeekendSurcharge       LineItemCode = "weekend_surcharge"
	LineDurationDiscount       LineItemCode = "duration_discount"
	LineProtection             LineItemCode = "protection"
	LineAddOns                 LineItemCode = "add_ons"
	LineYoungDriver            LineItemCode = "young_driver"
	LineAdditionalDrivers      LineItemCode = "additional_drivers"
	LineYoungAdditionalDrivers LineItemCode = "young_additional_drivers"
	LineDeliveryFee            LineItemCode = "delivery_fee"
	LineDropoffFee             LineItemCode = "dropoff_fee"
	LinePVRT                   LineItemCode = "pvrt"
	LineRentalSurcharge        LineItemCode = "rental_surcharge"
	LinePST                    LineItemCode = "pst"
	LineGST                    LineItemCode = "gst"
	LineDeposit                LineItemCode = "deposit"
)

// DiscountType тип скидки за длительность
type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountWeekly  DiscountType = "weekly"
	DiscountMonthly DiscountType = "monthly"
)

// LineItem строка расчета, скидка записывается отрицательной суммой
type LineItem struct {
	Code   LineItemCode
	Label  string
	Amount decimal.Decimal
}

// PriceBreakdown детализированный расчет стоимости аренды
// Суммы не округляются, округление до центов выполняется только при выводе и сравнении
type PriceBreakdown struct {
	LineItems      []LineItem
	RentalDays     int
	Subtotal       decimal.Decimal
	RegulatoryFees decimal.Decimal
	PST            decimal.Decimal
	GST            decimal.Decimal
	Total          decimal.Decimal
	DiscountType   DiscountType
	// Deposit блокируется на карте отдельно и не входит в Total
	Deposit decimal.Decimal
}

// Item ищет строку расчета по коду
func (b *PriceBreakdown) Item(code LineItemCode) (LineItem, bool) {
	for _, item := range b.LineItems {
		if item.Code == code {
			return item, true
		}
	}
	return LineItem{}, false
}

// Taxes сумма PST и GST
func (b *PriceBreakdown) Taxes() decimal.Decimal {
	return b.PST.Add(b.GST)
}

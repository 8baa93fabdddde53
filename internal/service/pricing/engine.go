package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Input входные данные расчета
type Input struct {
	Vehicle    *domain.Vehicle
	Protection *domain.ProtectionPlan
	RentalDays int
	PickupDate time.Time

	AddOnsTotal decimal.Decimal
	DeliveryFee decimal.Decimal
	DropoffFee  decimal.Decimal

	DriverAgeBand     domain.DriverAgeBand
	AdditionalDrivers []domain.DriverAgeBand
	DriverFees        domain.DriverFeeSettings

	Deposit decimal.Decimal
}

// Engine калькулятор стоимости аренды
// Не выполняет I/O: все тарифы приходят во входных данных или в Policy
type Engine struct {
	policy Policy
}

// NewEngine создает калькулятор с заданными правилами
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy возвращает правила расчета
func (e *Engine) Policy() Policy {
	return e.policy
}

// Calculate строит расчет с нуля при каждом вызове
// Порядок шагов фиксирован: от него зависит состав строк и база скидки и налогов
func (e *Engine) Calculate(in Input) (*domain.PriceBreakdown, error) {
	if in.Vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle is required for pricing", domain.ErrDataUnavailable)
	}
	if in.Protection == nil {
		return nil, fmt.Errorf("%w: protection plan is required for pricing", domain.ErrDataUnavailable)
	}
	if in.RentalDays < domain.MinRentalDays || in.RentalDays > domain.MaxRentalDays {
		return nil, fmt.Errorf("%w: rental days must be in [%d, %d], got %d",
			domain.ErrValidation, domain.MinRentalDays, domain.MaxRentalDays, in.RentalDays)
	}

	p := e.policy
	days := decimal.NewFromInt(int64(in.RentalDays))
	rate := in.Vehicle.DailyRate

	bd := &domain.PriceBreakdown{
		RentalDays:   in.RentalDays,
		DiscountType: domain.DiscountNone,
	}

	// 1. Базовая стоимость
	base := rate.Mul(days)
	bd.LineItems = append(bd.LineItems, domain.LineItem{
		Code:   domain.LineVehicleRental,
		Label:  fmt.Sprintf("Vehicle rental (%d days × $%s)", in.RentalDays, rate.StringFixed(2)),
		Amount: base,
	})

	// 2. Доплата за выходные
	weekendDays := e.weekendDays(in.PickupDate, in.RentalDays)
	weekend := rate.Mul(p.WeekendSurchargeRate).Mul(decimal.NewFromInt(int64(weekendDays)))
	addLine(bd, domain.LineWeekendSurcharge, fmt.Sprintf("Weekend surcharge (%d days)", weekendDays), weekend)

	// 3. Скидка за длительность, только на базу и доплату за выходные
	discountType, discountRate := e.discount(in.RentalDays)
	bd.DiscountType = discountType
	discount := base.Add(weekend).Mul(discountRate)
	if discount.IsPositive() {
		bd.LineItems = append(bd.LineItems, domain.LineItem{
			Code:   domain.LineDurationDiscount,
			Label:  fmt.Sprintf("%s discount (%s%%)", discountLabel(discountType), discountRate.Shift(2).String()),
			Amount: discount.Neg(),
		})
	}

	// 4. Защита
	protection := in.Protection.DailyRate.Mul(days)
	addLine(bd, domain.LineProtection, fmt.Sprintf("Protection: %s", in.Protection.Tier), protection)

	// 5. Дополнительные опции
	addLine(bd, domain.LineAddOns, "Add-ons", in.AddOnsTotal)

	// 6. Сборы за водителей
	drivers := e.driverFees(bd, in, days)

	// 7. Доставка и возврат в другую локацию
	addLine(bd, domain.LineDeliveryFee, "Delivery fee", in.DeliveryFee)
	addLine(bd, domain.LineDropoffFee, "Different drop-off location fee", in.DropoffFee)

	// 8. Промежуточный итог
	subtotal := base.Add(weekend).Sub(discount).
		Add(protection).
		Add(in.AddOnsTotal).
		Add(drivers).
		Add(in.DeliveryFee).
		Add(in.DropoffFee)
	bd.Subtotal = subtotal

	// 9. Регуляторные сборы
	pvrt := p.PVRTDaily.Mul(days)
	surcharge := p.RentalSurchargeDaily.Mul(days)
	addLine(bd, domain.LinePVRT, fmt.Sprintf("PVRT ($%s/day)", p.PVRTDaily.StringFixed(2)), pvrt)
	addLine(bd, domain.LineRentalSurcharge, fmt.Sprintf("Rental surcharge ($%s/day)", p.RentalSurchargeDaily.StringFixed(2)), surcharge)
	bd.RegulatoryFees = pvrt.Add(surcharge)

	// 10. Налоги
	taxBase := subtotal
	if p.TaxRegulatoryFees {
		taxBase = taxBase.Add(bd.RegulatoryFees)
	}
	bd.PST = taxBase.Mul(p.PSTRate)
	bd.GST = taxBase.Mul(p.GSTRate)
	addLine(bd, domain.LinePST, fmt.Sprintf("PST (%s%%)", p.PSTRate.Shift(2).String()), bd.PST)
	addLine(bd, domain.LineGST, fmt.Sprintf("GST (%s%%)", p.GSTRate.Shift(2).String()), bd.GST)

	// 11. Итог
	bd.Total = subtotal.Add(bd.RegulatoryFees).Add(bd.PST).Add(bd.GST)

	// 12. Депозит отдельной строкой, в итог не входит
	bd.Deposit = in.Deposit
	addLine(bd, domain.LineDeposit, "Security deposit (hold, not charged)", in.Deposit)

	return bd, nil
}

// weekendDays количество дней аренды, за которые начисляется доплата
func (e *Engine) weekendDays(pickup time.Time, rentalDays int) int {
	switch e.policy.WeekendPolicy {
	case WeekendPickupDay:
		if isWeekend(pickup.Weekday()) {
			return rentalDays
		}
		return 0
	default:
		count := 0
		for i := 0; i < rentalDays; i++ {
			if isWeekend(pickup.AddDate(0, 0, i).Weekday()) {
				count++
			}
		}
		return count
	}
}

// discount выбирает наибольшую подходящую скидку
func (e *Engine) discount(rentalDays int) (domain.DiscountType, decimal.Decimal) {
	switch {
	case rentalDays >= e.policy.MonthlyDiscountDays:
		return domain.DiscountMonthly, e.policy.MonthlyDiscountRate
	case rentalDays >= e.policy.WeeklyDiscountDays:
		return domain.DiscountWeekly, e.policy.WeeklyDiscountRate
	}
	return domain.DiscountNone, decimal.Zero
}

func (e *Engine) driverFees(bd *domain.PriceBreakdown, in Input, days decimal.Decimal) decimal.Decimal {
	total := decimal.Zero

	if in.DriverAgeBand == domain.DriverYoung {
		young := in.DriverFees.YoungDriverDaily.Mul(days)
		addLine(bd, domain.LineYoungDriver, "Young driver surcharge", young)
		total = total.Add(young)
	}

	extra := len(in.AdditionalDrivers)
	if extra > 0 {
		additional := in.DriverFees.AdditionalDriverDaily.Mul(days).Mul(decimal.NewFromInt(int64(extra)))
		addLine(bd, domain.LineAdditionalDrivers, fmt.Sprintf("Additional drivers (%d)", extra), additional)
		total = total.Add(additional)
	}

	youngExtra := 0
	for _, band := range in.AdditionalDrivers {
		if band == domain.DriverYoung {
			youngExtra++
		}
	}
	if youngExtra > 0 {
		young := in.DriverFees.YoungAdditionalDriverDaily.Mul(days).Mul(decimal.NewFromInt(int64(youngExtra)))
		addLine(bd, domain.LineYoungAdditionalDrivers, fmt.Sprintf("Young additional drivers (%d)", youngExtra), young)
		total = total.Add(young)
	}

	return total
}

// addLine добавляет строку, нулевые суммы не показываются
func addLine(bd *domain.PriceBreakdown, code domain.LineItemCode, label string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	bd.LineItems = append(bd.LineItems, domain.LineItem{Code: code, Label: label, Amount: amount})
}

func isWeekend(d time.Weekday) bool {
	return d == time.Friday || d == time.Saturday || d == time.Sunday
}

func discountLabel(t domain.DiscountType) string {
	if t == domain.DiscountMonthly {
		return "Monthly"
	}
	return "Weekly"
}

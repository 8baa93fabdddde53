package domain

import "github.com/shopspring/decimal"

// DriverAgeBand возрастная группа водителя
type DriverAgeBand string

const (
	DriverStandard DriverAgeBand = "standard"
	DriverYoung    DriverAgeBand = "young" // 21-24 года
)

// IsValid проверяет, что группа известна
func (b DriverAgeBand) IsValid() bool {
	return b == DriverStandard || b == DriverYoung
}

// DriverFeeSettings дневные сборы за водителей
type DriverFeeSettings struct {
	// YoungDriverDaily доплата за молодого основного водителя
	YoungDriverDaily decimal.Decimal
	// AdditionalDriverDaily сбор за каждого дополнительного водителя
	AdditionalDriverDaily decimal.Decimal
	// YoungAdditionalDriverDaily доплата за каждого молодого дополнительного водителя
	YoungAdditionalDriverDaily decimal.Decimal
}

// DefaultDriverFeeSettings значения по умолчанию
func DefaultDriverFeeSettings() DriverFeeSettings {
	return DriverFeeSettings{
		YoungDriverDaily:           DefaultYoungDriverDaily,
		AdditionalDriverDaily:      DefaultAdditionalDriverDaily,
		YoungAdditionalDriverDaily: DefaultYoungAdditionalDriverDaily,
	}
}

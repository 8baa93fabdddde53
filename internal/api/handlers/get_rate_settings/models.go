package get_rate_settings

import "github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings/models"

// ProtectionRatesResponse ставки защиты группы 1
type ProtectionRatesResponse struct {
	Basic   string `json:"basic"`
	Smart   string `json:"smart"`
	Premium string `json:"premium"`
}

// DriverFeesResponse сборы за водителей
type DriverFeesResponse struct {
	YoungDriverDaily           string `json:"youngDriverDaily"`
	AdditionalDriverDaily      string `json:"additionalDriverDaily"`
	YoungAdditionalDriverDaily string `json:"youngAdditionalDriverDaily"`
}

// DropoffOverrideResponse надбавка для пары локаций
type DropoffOverrideResponse struct {
	FromLocationID int64  `json:"fromLocationId"`
	ToLocationID   int64  `json:"toLocationId"`
	Fee            string `json:"fee"`
}

// SettingsResponse действующие настройки тарифов
type SettingsResponse struct {
	Group1            ProtectionRatesResponse   `json:"group1"`
	DriverFees        DriverFeesResponse        `json:"driverFees"`
	DropoffFeeDefault string                    `json:"dropoffFeeDefault"`
	DropoffOverrides  []DropoffOverrideResponse `json:"dropoffOverrides"`
	SecurityDeposit   string                    `json:"securityDeposit"`
}

// FromSettings конвертирует настройки в ответ API
func FromSettings(s *models.Settings) SettingsResponse {
	overrides := make([]DropoffOverrideResponse, 0, len(s.DropoffOverrides))
	for _, o := range s.DropoffOverrides {
		overrides = append(overrides, DropoffOverrideResponse{
			FromLocationID: o.FromLocationID,
			ToLocationID:   o.ToLocationID,
			Fee:            o.Fee.StringFixed(2),
		})
	}

	return SettingsResponse{
		Group1: ProtectionRatesResponse{
			Basic:   s.Group1.Basic.StringFixed(2),
			Smart:   s.Group1.Smart.StringFixed(2),
			Premium: s.Group1.Premium.StringFixed(2),
		},
		DriverFees: DriverFeesResponse{
			YoungDriverDaily:           s.DriverFees.YoungDriverDaily.StringFixed(2),
			AdditionalDriverDaily:      s.DriverFees.AdditionalDriverDaily.StringFixed(2),
			YoungAdditionalDriverDaily: s.DriverFees.YoungAdditionalDriverDaily.StringFixed(2),
		},
		DropoffFeeDefault: s.DropoffFeeDefault.StringFixed(2),
		DropoffOverrides:  overrides,
		SecurityDeposit:   s.SecurityDeposit.StringFixed(2),
	}
}

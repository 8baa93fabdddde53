package update_rate_settings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings/models"
)

// DropoffOverrideRequest надбавка для пары локаций
type DropoffOverrideRequest struct {
	FromLocationID int64  `json:"fromLocationId"`
	ToLocationID   int64  `json:"toLocationId"`
	Fee            string `json:"fee"`
}

// UpdateSettingsRequest частичное обновление, отсутствующие поля не меняются
// Суммы передаются строками, чтобы не терять точность
type UpdateSettingsRequest struct {
	Group1Basic   *string `json:"group1Basic,omitempty"`
	Group1Smart   *string `json:"group1Smart,omitempty"`
	Group1Premium *string `json:"group1Premium,omitempty"`

	YoungDriverDaily           *string `json:"youngDriverDaily,omitempty"`
	AdditionalDriverDaily      *string `json:"additionalDriverDaily,omitempty"`
	YoungAdditionalDriverDaily *string `json:"youngAdditionalDriverDaily,omitempty"`

	DropoffFeeDefault *string                  `json:"dropoffFeeDefault,omitempty"`
	SecurityDeposit   *string                  `json:"securityDeposit,omitempty"`
	DropoffOverrides  []DropoffOverrideRequest `json:"dropoffOverrides,omitempty"`
}

// ToServiceRequest разбирает суммы и собирает запрос сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID int64) (*models.UpdateRequest, error) {
	req := &models.UpdateRequest{UserID: userID}

	fields := []struct {
		name string
		src  *string
		dst  **decimal.Decimal
	}{
		{"group1Basic", r.Group1Basic, &req.Group1Basic},
		{"group1Smart", r.Group1Smart, &req.Group1Smart},
		{"group1Premium", r.Group1Premium, &req.Group1Premium},
		{"youngDriverDaily", r.YoungDriverDaily, &req.YoungDriverDaily},
		{"additionalDriverDaily", r.AdditionalDriverDaily, &req.AdditionalDriverDaily},
		{"youngAdditionalDriverDaily", r.YoungAdditionalDriverDaily, &req.YoungAdditionalDriverDaily},
		{"dropoffFeeDefault", r.DropoffFeeDefault, &req.DropoffFeeDefault},
		{"securityDeposit", r.SecurityDeposit, &req.SecurityDeposit},
	}

	for _, f := range fields {
		if f.src == nil {
			continue
		}
		v, err := decimal.NewFromString(*f.src)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for %s: %q", f.name, *f.src)
		}
		*f.dst = &v
	}

	for _, o := range r.DropoffOverrides {
		fee, err := decimal.NewFromString(o.Fee)
		if err != nil {
			return nil, fmt.Errorf("invalid dropoff fee: %q", o.Fee)
		}
		req.DropoffOverrides = append(req.DropoffOverrides, models.DropoffOverride{
			FromLocationID: o.FromLocationID,
			ToLocationID:   o.ToLocationID,
			Fee:            fee,
		})
	}

	return req, nil
}

package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Settings действующие значения тарифов с учетом значений по умолчанию
type Settings struct {
	Group1            domain.ProtectionRates
	DriverFees        domain.DriverFeeSettings
	DropoffFeeDefault decimal.Decimal
	DropoffOverrides  []DropoffOverride
	SecurityDeposit   decimal.Decimal
}

// DropoffOverride надбавка за возврат для конкретной пары локаций
type DropoffOverride struct {
	FromLocationID int64
	ToLocationID   int64
	Fee            decimal.Decimal
}

// UpdateRequest частичное обновление настроек, nil-поля не меняются
type UpdateRequest struct {
	UserID int64

	Group1Basic   *decimal.Decimal
	Group1Smart   *decimal.Decimal
	Group1Premium *decimal.Decimal

	YoungDriverDaily           *decimal.Decimal
	AdditionalDriverDaily      *decimal.Decimal
	YoungAdditionalDriverDaily *decimal.Decimal

	DropoffFeeDefault *decimal.Decimal
	SecurityDeposit   *decimal.Decimal
	DropoffOverrides  []DropoffOverride
}

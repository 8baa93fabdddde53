package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProtectionGroup группа тарифов защиты, к которой относится категория машины
type ProtectionGroup int

const (
	ProtectionGroupStandard ProtectionGroup = 1 // настраивается администратором
	ProtectionGroupSUV      ProtectionGroup = 2
	ProtectionGroupLuxury   ProtectionGroup = 3
)

// IsValid проверяет, что группа известна
func (g ProtectionGroup) IsValid() bool {
	return g >= ProtectionGroupStandard && g <= ProtectionGroupLuxury
}

// ProtectionTier уровень защиты
type ProtectionTier string

const (
	ProtectionNone    ProtectionTier = "none"
	ProtectionBasic   ProtectionTier = "basic"
	ProtectionSmart   ProtectionTier = "smart"
	ProtectionPremium ProtectionTier = "premium"
)

// IsValid проверяет, что уровень известен
func (t ProtectionTier) IsValid() bool {
	switch t {
	case ProtectionNone, ProtectionBasic, ProtectionSmart, ProtectionPremium:
		return true
	}
	return false
}

// Deductible описание франшизы для уровня защиты
func (t ProtectionTier) Deductible() string {
	switch t {
	case ProtectionBasic:
		return "$2,500 deductible"
	case ProtectionSmart:
		return "$1,000 deductible"
	case ProtectionPremium:
		return "$0 deductible"
	}
	return "full liability"
}

// ProtectionRates дневные ставки защиты одной группы
type ProtectionRates struct {
	Basic   decimal.Decimal
	Smart   decimal.Decimal
	Premium decimal.Decimal
}

// RateFor возвращает дневную ставку для уровня, "none" всегда 0
func (r ProtectionRates) RateFor(tier ProtectionTier) (decimal.Decimal, error) {
	switch tier {
	case ProtectionNone:
		return decimal.Zero, nil
	case ProtectionBasic:
		return r.Basic, nil
	case ProtectionSmart:
		return r.Smart, nil
	case ProtectionPremium:
		return r.Premium, nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown protection tier %q", ErrValidation, tier)
}

// ProtectionPlan выбранный план защиты
type ProtectionPlan struct {
	Tier       ProtectionTier
	DailyRate  decimal.Decimal
	Deductible string
}

// NewProtectionPlan собирает план из таблицы ставок группы
func NewProtectionPlan(tier ProtectionTier, rates ProtectionRates) (*ProtectionPlan, error) {
	rate, err := rates.RateFor(tier)
	if err != nil {
		return nil, err
	}
	return &ProtectionPlan{
		Tier:       tier,
		DailyRate:  rate,
		Deductible: tier.Deductible(),
	}, nil
}

package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation некорректные входные данные (диапазон дат, количество дней, тариф)
	ErrValidation = errors.New("validation error")

	// ErrDataUnavailable данные о транспорте, тарифах или конфликтах недоступны
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrPriceMismatch сумма клиента не совпала с серверным пересчетом
	ErrPriceMismatch = errors.New("price mismatch")
)

// PriceMismatchError расхождение суммы клиента с серверным пересчетом
// Несет актуальный расчет, чтобы клиент мог показать подтверждение новой цены
type PriceMismatchError struct {
	Submitted decimal.Decimal
	Expected  decimal.Decimal
	Breakdown *PriceBreakdown
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("%s: submitted %s, expected %s",
		ErrPriceMismatch, e.Submitted.StringFixed(2), e.Expected.StringFixed(2))
}

// Is позволяет проверять ошибку через errors.Is(err, ErrPriceMismatch)
func (e *PriceMismatchError) Is(target error) bool {
	return target == ErrPriceMismatch
}

package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// VerifyClientTotal сверяет сумму клиента с серверным расчетом с точностью до цента
// При расхождении возвращает *domain.PriceMismatchError с актуальным расчетом
func VerifyClientTotal(submitted decimal.Decimal, bd *domain.PriceBreakdown) error {
	expected := bd.Total.Round(2)
	if submitted.Round(2).Equal(expected) {
		return nil
	}
	return &domain.PriceMismatchError{
		Submitted: submitted,
		Expected:  expected,
		Breakdown: bd,
	}
}

package handlers

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// LineItemResponse строка расчета
type LineItemResponse struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// PriceBreakdownResponse расчет стоимости, суммы строками с двумя знаками
type PriceBreakdownResponse struct {
	LineItems      []LineItemResponse `json:"lineItems"`
	RentalDays     int                `json:"rentalDays"`
	Subtotal       string             `json:"subtotal"`
	RegulatoryFees string             `json:"regulatoryFees"`
	PST            string             `json:"pst"`
	GST            string             `json:"gst"`
	Total          string             `json:"total"`
	DiscountType   string             `json:"discountType"`
	Deposit        string             `json:"deposit"`
}

// FromBreakdown конвертирует расчет в DTO
func FromBreakdown(bd *domain.PriceBreakdown) *PriceBreakdownResponse {
	if bd == nil {
		return nil
	}

	items := make([]LineItemResponse, 0, len(bd.LineItems))
	for _, item := range bd.LineItems {
		items = append(items, LineItemResponse{
			Code:   string(item.Code),
			Label:  item.Label,
			Amount: item.Amount.StringFixed(2),
		})
	}

	return &PriceBreakdownResponse{
		LineItems:      items,
		RentalDays:     bd.RentalDays,
		Subtotal:       bd.Subtotal.StringFixed(2),
		RegulatoryFees: bd.RegulatoryFees.StringFixed(2),
		PST:            bd.PST.StringFixed(2),
		GST:            bd.GST.StringFixed(2),
		Total:          bd.Total.StringFixed(2),
		DiscountType:   string(bd.DiscountType),
		Deposit:        bd.Deposit.StringFixed(2),
	}
}

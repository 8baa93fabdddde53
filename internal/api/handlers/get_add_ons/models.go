package get_add_ons

import "github.com/m04kA/SMC-CarRentalService/internal/domain"

// AddOnResponse опция каталога
type AddOnResponse struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Pricing string `json:"pricing"` // per_day, one_time, fuel
	Price   string `json:"price"`
}

// FromDomainList конвертирует каталог
func FromDomainList(items []*domain.AddOn) []AddOnResponse {
	out := make([]AddOnResponse, 0, len(items))
	for _, item := range items {
		out = append(out, AddOnResponse{
			ID:      item.ID,
			Code:    item.Code,
			Name:    item.Name,
			Pricing: string(item.Pricing),
			Price:   item.Price.StringFixed(2),
		})
	}
	return out
}

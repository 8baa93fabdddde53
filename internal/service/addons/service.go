package addons

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Line стоимость одной выбранной опции
type Line struct {
	AddOn  *domain.AddOn
	Amount decimal.Decimal
}

// Selection выбранные опции и их сумма
type Selection struct {
	Lines []Line
	Total decimal.Decimal
}

// Service каталог и расчет дополнительных опций
type Service struct {
	repo   AddOnRepository
	logger Logger
}

// NewService создает сервис опций
func NewService(repo AddOnRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Catalog активные опции каталога
func (s *Service) Catalog(ctx context.Context) ([]*domain.AddOn, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Catalog: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list add-ons: %w", domain.ErrDataUnavailable, err)
	}
	return items, nil
}

// Total считает стоимость выбранных опций на весь срок аренды
// Повторяющиеся ID учитываются один раз
func (s *Service) Total(ctx context.Context, ids []int64, days int, vehicle *domain.Vehicle) (*Selection, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return &Selection{Lines: []Line{}, Total: decimal.Zero}, nil
	}

	items, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Total: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to get add-ons: %w", domain.ErrDataUnavailable, err)
	}

	byID := make(map[int64]*domain.AddOn, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	selected := make([]*domain.AddOn, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok || !item.IsActive {
			s.logger.Warn("Total: unknown or inactive add-on id=%d", id)
			return nil, fmt.Errorf("%w: unknown add-on id=%d", domain.ErrValidation, id)
		}
		selected = append(selected, item)
	}

	return Compute(selected, days, vehicle)
}

// Compute считает стоимость набора опций без обращения к хранилищу
func Compute(items []*domain.AddOn, days int, vehicle *domain.Vehicle) (*Selection, error) {
	sel := &Selection{Lines: make([]Line, 0, len(items)), Total: decimal.Zero}
	daysDec := decimal.NewFromInt(int64(days))

	for _, item := range items {
		var amount decimal.Decimal

		switch item.Pricing {
		case domain.AddOnPerDay:
			amount = item.Price.Mul(daysDec)
		case domain.AddOnOneTime:
			amount = item.Price
		case domain.AddOnFuel:
			if vehicle == nil || !vehicle.TankCapacityLitres.Valid {
				return nil, fmt.Errorf("%w: tank capacity unknown for fuel add-on id=%d", domain.ErrDataUnavailable, item.ID)
			}
			amount = item.Price.Mul(vehicle.TankCapacityLitres.Decimal)
		default:
			return nil, fmt.Errorf("%w: unsupported pricing %q for add-on id=%d", domain.ErrDataUnavailable, item.Pricing, item.ID)
		}

		sel.Lines = append(sel.Lines, Line{AddOn: item, Amount: amount})
		sel.Total = sel.Total.Add(amount)
	}

	return sel, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

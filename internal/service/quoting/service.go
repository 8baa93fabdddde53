package quoting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/pricing"
)

// Service собирает входные данные калькулятора из тарифов, опций и доставки
// Один и тот же расчет используется для предварительной цены и при создании бронирования
type Service struct {
	rates      RateProvider
	addOns     AddOnCalculator
	delivery   DeliveryQuoter
	calculator Calculator
	logger     Logger
}

// NewService создает сервис расчета
func NewService(rates RateProvider, addOns AddOnCalculator, delivery DeliveryQuoter, calculator Calculator, logger Logger) *Service {
	return &Service{
		rates:      rates,
		addOns:     addOns,
		delivery:   delivery,
		calculator: calculator,
		logger:     logger,
	}
}

// Build рассчитывает стоимость аренды с нуля
func (s *Service) Build(ctx context.Context, req *Request) (*Quote, error) {
	// 1. Валидация входных данных
	if req.Vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle is required", domain.ErrDataUnavailable)
	}
	if err := req.Range.ValidateRental(); err != nil {
		return nil, err
	}
	if !req.ProtectionTier.IsValid() {
		return nil, fmt.Errorf("%w: unknown protection tier %q", domain.ErrValidation, req.ProtectionTier)
	}
	band, extra, err := normalizeDrivers(req.DriverAgeBand, req.AdditionalDrivers)
	if err != nil {
		return nil, err
	}
	days := req.Range.RentalDays()

	pickupID := req.PickupLocationID
	if pickupID == nil {
		pickupID = req.Vehicle.LocationID
	}
	if !req.Vehicle.ServesLocation(pickupID) {
		return nil, fmt.Errorf("%w: vehicle id=%d is not offered at location id=%d", domain.ErrValidation, req.Vehicle.ID, *pickupID)
	}

	// 2. План защиты по группе машины
	// Все тарифы одного расчета читаются из одного снимка настроек
	ctx = s.rates.Snapshot(ctx)
	rates, err := s.rates.GetRates(ctx, req.Vehicle.ProtectionGroup)
	if err != nil {
		s.logger.Warn("Build: no protection rates for vehicle id=%d group=%d: %v", req.Vehicle.ID, req.Vehicle.ProtectionGroup, err)
		return nil, fmt.Errorf("%w: protection rates: %w", domain.ErrDataUnavailable, err)
	}
	plan, err := domain.NewProtectionPlan(req.ProtectionTier, rates)
	if err != nil {
		return nil, err
	}

	// 3. Дополнительные опции
	selection, err := s.addOns.Total(ctx, req.AddOnIDs, days, req.Vehicle)
	if err != nil {
		return nil, err
	}

	// 4. Доставка
	quote := &Quote{Protection: plan, AddOns: selection, PickupLocationID: pickupID, DropoffLocationID: req.DropoffLocationID}
	deliveryFee := decimal.Zero
	if req.DeliveryAddress != nil {
		if pickupID == nil {
			return nil, fmt.Errorf("%w: pickup location is required for delivery", domain.ErrValidation)
		}
		dq, err := s.delivery.Quote(ctx, *pickupID, *req.DeliveryAddress)
		if err != nil {
			return nil, err
		}
		quote.Delivery = dq
		deliveryFee = dq.Fee
	}

	// 5. Возврат в другую локацию
	dropoffFee := decimal.Zero
	if pickupID != nil && req.DropoffLocationID != nil {
		dropoffFee = s.rates.GetDropoffFee(ctx, *pickupID, *req.DropoffLocationID)
	}

	// 6. Расчет
	bd, err := s.calculator.Calculate(pricing.Input{
		Vehicle:           req.Vehicle,
		Protection:        plan,
		RentalDays:        days,
		PickupDate:        req.Range.PickupDate(),
		AddOnsTotal:       selection.Total,
		DeliveryFee:       deliveryFee,
		DropoffFee:        dropoffFee,
		DriverAgeBand:     band,
		AdditionalDrivers: extra,
		DriverFees:        s.rates.GetDriverFeeSettings(ctx),
		Deposit:           s.rates.GetSecurityDeposit(ctx),
	})
	if err != nil {
		return nil, err
	}

	quote.Breakdown = bd
	return quote, nil
}

func normalizeDrivers(primary domain.DriverAgeBand, additional []domain.DriverAgeBand) (domain.DriverAgeBand, []domain.DriverAgeBand, error) {
	if primary == "" {
		primary = domain.DriverStandard
	}
	if !primary.IsValid() {
		return "", nil, fmt.Errorf("%w: unknown driver age band %q", domain.ErrValidation, primary)
	}
	if len(additional) > domain.MaxAdditionalDrivers {
		return "", nil, fmt.Errorf("%w: at most %d additional drivers allowed", domain.ErrValidation, domain.MaxAdditionalDrivers)
	}

	out := make([]domain.DriverAgeBand, len(additional))
	for i, band := range additional {
		if band == "" {
			band = domain.DriverStandard
		}
		if !band.IsValid() {
			return "", nil, fmt.Errorf("%w: unknown driver age band %q", domain.ErrValidation, band)
		}
		out[i] = band
	}
	return primary, out, nil
}

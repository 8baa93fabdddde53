package quoting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/addons"
	"github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
	"github.com/m04kA/SMC-CarRentalService/internal/service/pricing"
	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
	"github.com/m04kA/SMC-CarRentalService/pkg/ptr"
)

type mockRates struct {
	err        error
	dropoffArg [2]int64
	snapshots  int
}

func (m *mockRates) Snapshot(ctx context.Context) context.Context {
	m.snapshots++
	return ctx
}

func (m *mockRates) GetRates(_ context.Context, group domain.ProtectionGroup) (domain.ProtectionRates, error) {
	if m.err != nil {
		return domain.ProtectionRates{}, m.err
	}
	if group == domain.ProtectionGroupSUV {
		return domain.Group2Rates, nil
	}
	return domain.ProtectionRates{
		Basic:   domain.DefaultGroup1BasicRate,
		Smart:   domain.DefaultGroup1SmartRate,
		Premium: domain.DefaultGroup1PremiumRate,
	}, nil
}

func (m *mockRates) GetDriverFeeSettings(context.Context) domain.DriverFeeSettings {
	return domain.DefaultDriverFeeSettings()
}

func (m *mockRates) GetDropoffFee(_ context.Context, from, to int64) decimal.Decimal {
	m.dropoffArg = [2]int64{from, to}
	if from == to {
		return decimal.Zero
	}
	return domain.DefaultDropoffFee
}

func (m *mockRates) GetSecurityDeposit(context.Context) decimal.Decimal {
	return domain.DefaultSecurityDeposit
}

type mockAddOns struct {
	total decimal.Decimal
	err   error
}

func (m *mockAddOns) Total(context.Context, []int64, int, *domain.Vehicle) (*addons.Selection, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &addons.Selection{Total: m.total}, nil
}

type mockDelivery struct {
	fee string
	err error
}

func (m *mockDelivery) Quote(_ context.Context, locationID int64, _ domain.GeoPoint) (*delivery.Quote, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &delivery.Quote{LocationID: locationID, DistanceKm: 20, Fee: decimal.RequireFromString(m.fee)}, nil
}

var (
	_ quoting.RateProvider    = (*mockRates)(nil)
	_ quoting.AddOnCalculator = (*mockAddOns)(nil)
	_ quoting.DeliveryQuoter  = (*mockDelivery)(nil)
	_ quoting.Calculator      = (*pricing.Engine)(nil)
)

func newService(rates *mockRates, addOns *mockAddOns, d *mockDelivery) *quoting.Service {
	return quoting.NewService(rates, addOns, d, pricing.NewEngine(pricing.DefaultPolicy()), logger.NewNop())
}

func compact() *domain.Vehicle {
	return &domain.Vehicle{
		ID:              1,
		LocationID:      ptr.Ptr(int64(1)),
		ProtectionGroup: domain.ProtectionGroupStandard,
		DailyRate:       decimal.RequireFromString("60.00"),
		IsAvailable:     true,
	}
}

// понедельник 10:00 - четверг 10:00, три будних дня
func weekdays() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2026, time.October, 5, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.October, 8, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_Build_Basic(t *testing.T) {
	svc := newService(&mockRates{}, &mockAddOns{total: decimal.Zero}, &mockDelivery{})

	q, err := svc.Build(context.Background(), &quoting.Request{
		Vehicle:        compact(),
		Range:          weekdays(),
		ProtectionTier: domain.ProtectionNone,
	})
	require.NoError(t, err)

	assert.Equal(t, "209.10", q.Breakdown.Total.StringFixed(2))
	assert.Equal(t, "250.00", q.Breakdown.Deposit.StringFixed(2))
	assert.Equal(t, int64(1), *q.PickupLocationID, "pickup defaults to the vehicle location")
	assert.Nil(t, q.Delivery)
}

func TestService_Build_AllComponents(t *testing.T) {
	rates := &mockRates{}
	svc := newService(rates, &mockAddOns{total: decimal.Zero}, &mockDelivery{fee: "49.00"})

	q, err := svc.Build(context.Background(), &quoting.Request{
		Vehicle:           compact(),
		Range:             weekdays(),
		PickupLocationID:  ptr.Ptr(int64(1)),
		DropoffLocationID: ptr.Ptr(int64(2)),
		ProtectionTier:    domain.ProtectionBasic,
		DeliveryAddress:   &domain.GeoPoint{Latitude: 49.28, Longitude: -123.12},
	})
	require.NoError(t, err)

	assert.Equal(t, [2]int64{1, 2}, rates.dropoffArg)
	assert.Equal(t, 1, rates.snapshots)
	assert.Equal(t, "19.99", q.Protection.DailyRate.StringFixed(2))

	// 180 + 59.97 + 49 + 50
	assert.Equal(t, "338.97", q.Breakdown.Subtotal.StringFixed(2))
	// 338.97 + 7.50 + 40.6764
	assert.Equal(t, "387.15", q.Breakdown.Total.StringFixed(2))
	require.NotNil(t, q.Delivery)
	assert.Equal(t, "49.00", q.Delivery.Fee.StringFixed(2))
}

func TestService_Build_ProtectionGroupFromVehicle(t *testing.T) {
	svc := newService(&mockRates{}, &mockAddOns{total: decimal.Zero}, &mockDelivery{})
	suv := compact()
	suv.ProtectionGroup = domain.ProtectionGroupSUV

	q, err := svc.Build(context.Background(), &quoting.Request{Vehicle: suv, Range: weekdays(), ProtectionTier: domain.ProtectionPremium})
	require.NoError(t, err)
	assert.True(t, q.Protection.DailyRate.Equal(domain.Group2Rates.Premium))
}

func TestService_Build_Errors(t *testing.T) {
	ctx := context.Background()
	tooLong := domain.DateRange{Start: weekdays().Start, End: weekdays().Start.AddDate(0, 0, 31)}
	agnostic := compact()
	agnostic.LocationID = nil

	tests := []struct {
		name    string
		rates   *mockRates
		addOns  *mockAddOns
		d       *mockDelivery
		req     *quoting.Request
		wantErr error
	}{
		{
			name:    "missing vehicle",
			req:     &quoting.Request{Range: weekdays(), ProtectionTier: domain.ProtectionNone},
			wantErr: domain.ErrDataUnavailable,
		},
		{
			name:    "rental longer than 30 days",
			req:     &quoting.Request{Vehicle: compact(), Range: tooLong, ProtectionTier: domain.ProtectionNone},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown tier",
			req:     &quoting.Request{Vehicle: compact(), Range: weekdays(), ProtectionTier: "gold"},
			wantErr: domain.ErrValidation,
		},
		{
			name: "too many drivers",
			req: &quoting.Request{Vehicle: compact(), Range: weekdays(), ProtectionTier: domain.ProtectionNone,
				AdditionalDrivers: make([]domain.DriverAgeBand, domain.MaxAdditionalDrivers+1)},
			wantErr: domain.ErrValidation,
		},
		{
			name: "vehicle at another location",
			req: &quoting.Request{Vehicle: compact(), Range: weekdays(), ProtectionTier: domain.ProtectionNone,
				PickupLocationID: ptr.Ptr(int64(9))},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "rates unavailable",
			rates:   &mockRates{err: errors.New("unknown group")},
			req:     &quoting.Request{Vehicle: compact(), Range: weekdays(), ProtectionTier: domain.ProtectionNone},
			wantErr: domain.ErrDataUnavailable,
		},
		{
			name:    "add-ons rejected",
			addOns:  &mockAddOns{err: domain.ErrValidation},
			req:     &quoting.Request{Vehicle: compact(), Range: weekdays(), ProtectionTier: domain.ProtectionNone, AddOnIDs: []int64{99}},
			wantErr: domain.ErrValidation,
		},
		{
			name: "delivery without pickup location",
			req: &quoting.Request{Vehicle: agnostic, Range: weekdays(), ProtectionTier: domain.ProtectionNone,
				DeliveryAddress: &domain.GeoPoint{}},
			wantErr: domain.ErrValidation,
		},
		{
			name: "delivery out of range",
			d:    &mockDelivery{err: delivery.ErrDeliveryUnavailable},
			req: &quoting.Request{Vehicle: compact(), Range: weekdays(), ProtectionTier: domain.ProtectionNone,
				DeliveryAddress: &domain.GeoPoint{}},
			wantErr: delivery.ErrDeliveryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, addOns, d := tt.rates, tt.addOns, tt.d
			if rates == nil {
				rates = &mockRates{}
			}
			if addOns == nil {
				addOns = &mockAddOns{total: decimal.Zero}
			}
			if d == nil {
				d = &mockDelivery{fee: "0"}
			}

			_, err := newService(rates, addOns, d).Build(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

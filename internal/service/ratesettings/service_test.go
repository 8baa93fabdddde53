package ratesettings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/cache"
	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings"
	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockRepo struct {
	values   map[string]string
	err      error
	getCalls int
	upserted map[string]string
}

func (m *mockRepo) GetAll(context.Context) (map[string]string, error) {
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *mockRepo) Upsert(_ context.Context, values map[string]string) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = values
	if m.values == nil {
		m.values = map[string]string{}
	}
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

type mockMetrics struct{ reasons []string }

func (m *mockMetrics) IncSettingsFallback(reason string) { m.reasons = append(m.reasons, reason) }

var (
	_ ratesettings.SettingsRepository = (*mockRepo)(nil)
	_ ratesettings.Cache              = (*cache.MemoryCache)(nil)
	_ ratesettings.Cache              = (*cache.RedisCache)(nil)
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newProvider(repo *mockRepo, m *mockMetrics) *ratesettings.Provider {
	return ratesettings.NewProvider(repo, cache.NewMemoryCache(), time.Minute, m, logger.NewNop())
}

func TestProvider_GetRates(t *testing.T) {
	repo := &mockRepo{values: map[string]string{
		ratesettings.KeyGroup1Basic:   "21.99",
		ratesettings.KeyGroup1Smart:   "26.99",
		ratesettings.KeyGroup1Premium: "31.99",
	}}
	p := newProvider(repo, &mockMetrics{})
	ctx := context.Background()

	rates, err := p.GetRates(ctx, domain.ProtectionGroupStandard)
	require.NoError(t, err)
	assert.True(t, rates.Basic.Equal(d("21.99")))
	assert.True(t, rates.Smart.Equal(d("26.99")))
	assert.True(t, rates.Premium.Equal(d("31.99")))

	rates, err = p.GetRates(ctx, domain.ProtectionGroupSUV)
	require.NoError(t, err)
	assert.Equal(t, domain.Group2Rates, rates)

	rates, err = p.GetRates(ctx, domain.ProtectionGroupLuxury)
	require.NoError(t, err)
	assert.Equal(t, domain.Group3Rates, rates)

	_, err = p.GetRates(ctx, domain.ProtectionGroup(9))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProvider_CachesStoreReads(t *testing.T) {
	repo := &mockRepo{values: map[string]string{ratesettings.KeySecurityDeposit: "300"}}
	p := newProvider(repo, &mockMetrics{})
	ctx := context.Background()

	assert.True(t, p.GetSecurityDeposit(ctx).Equal(d("300")))
	assert.True(t, p.GetSecurityDeposit(ctx).Equal(d("300")))
	assert.Equal(t, 1, repo.getCalls)
}

func TestProvider_StoreErrorFallsBackToDefaults(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	m := &mockMetrics{}
	p := newProvider(repo, m)
	ctx := context.Background()

	rates, err := p.GetRates(ctx, domain.ProtectionGroupStandard)
	require.NoError(t, err)
	assert.True(t, rates.Basic.Equal(domain.DefaultGroup1BasicRate))
	assert.True(t, rates.Smart.Equal(domain.DefaultGroup1SmartRate))
	assert.True(t, rates.Premium.Equal(domain.DefaultGroup1PremiumRate))

	fees := p.GetDriverFeeSettings(ctx)
	assert.Equal(t, domain.DefaultDriverFeeSettings(), fees)

	assert.Contains(t, m.reasons, "store_error")
}

func TestProvider_InvalidValueFallsBackToDefault(t *testing.T) {
	repo := &mockRepo{values: map[string]string{
		ratesettings.KeyYoungDriverDaily:      "abc",
		ratesettings.KeyAdditionalDriverDaily: "-1",
	}}
	m := &mockMetrics{}
	p := newProvider(repo, m)

	fees := p.GetDriverFeeSettings(context.Background())
	assert.True(t, fees.YoungDriverDaily.Equal(domain.DefaultYoungDriverDaily))
	assert.True(t, fees.AdditionalDriverDaily.Equal(domain.DefaultAdditionalDriverDaily))
	assert.Contains(t, m.reasons, "invalid_value")
	assert.Contains(t, m.reasons, "missing_key")
}

func TestProvider_GetDropoffFee(t *testing.T) {
	repo := &mockRepo{values: map[string]string{
		ratesettings.KeyDropoffFeeDefault: "60.00",
		ratesettings.DropoffPairKey(1, 2): "35.00",
		ratesettings.DropoffPairKey(2, 1): "oops",
	}}
	p := newProvider(repo, &mockMetrics{})
	ctx := context.Background()

	assert.True(t, p.GetDropoffFee(ctx, 1, 1).IsZero(), "same location")
	assert.True(t, p.GetDropoffFee(ctx, 1, 2).Equal(d("35")), "pair override")
	assert.True(t, p.GetDropoffFee(ctx, 1, 3).Equal(d("60")), "admin default")
	assert.True(t, p.GetDropoffFee(ctx, 2, 1).Equal(d("60")), "broken override")
}

func TestProvider_GetDropoffFee_BuiltInDefault(t *testing.T) {
	p := newProvider(&mockRepo{}, &mockMetrics{})

	assert.True(t, p.GetDropoffFee(context.Background(), 1, 2).Equal(domain.DefaultDropoffFee))
}

func TestProvider_UpdateSettings(t *testing.T) {
	repo := &mockRepo{values: map[string]string{ratesettings.KeyGroup1Basic: "19.99"}}
	p := newProvider(repo, &mockMetrics{})
	ctx := context.Background()

	// прогреваем кэш, обновление должно его сбросить
	rates, err := p.GetRates(ctx, domain.ProtectionGroupStandard)
	require.NoError(t, err)
	require.True(t, rates.Basic.Equal(d("19.99")))

	basic := d("22.5")
	settings, err := p.UpdateSettings(ctx, &models.UpdateRequest{
		UserID:      1,
		Group1Basic: &basic,
		DropoffOverrides: []models.DropoffOverride{
			{FromLocationID: 3, ToLocationID: 1, Fee: d("10")},
			{FromLocationID: 1, ToLocationID: 2, Fee: d("20")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		ratesettings.KeyGroup1Basic:       "22.50",
		ratesettings.DropoffPairKey(3, 1): "10.00",
		ratesettings.DropoffPairKey(1, 2): "20.00",
	}, repo.upserted)

	assert.True(t, settings.Group1.Basic.Equal(d("22.5")))
	require.Len(t, settings.DropoffOverrides, 2)
	assert.Equal(t, int64(1), settings.DropoffOverrides[0].FromLocationID)
	assert.Equal(t, int64(3), settings.DropoffOverrides[1].FromLocationID)
}

func TestProvider_UpdateSettings_Validation(t *testing.T) {
	negative := d("-1")
	tests := []struct {
		name string
		req  *models.UpdateRequest
	}{
		{"empty", &models.UpdateRequest{}},
		{"negative rate", &models.UpdateRequest{Group1Smart: &negative}},
		{"same location", &models.UpdateRequest{DropoffOverrides: []models.DropoffOverride{{FromLocationID: 1, ToLocationID: 1, Fee: d("5")}}}},
		{"bad location", &models.UpdateRequest{DropoffOverrides: []models.DropoffOverride{{FromLocationID: 0, ToLocationID: 1, Fee: d("5")}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			_, err := newProvider(repo, &mockMetrics{}).UpdateSettings(context.Background(), tt.req)
			assert.ErrorIs(t, err, ratesettings.ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestProvider_UpdateSettings_StoreError(t *testing.T) {
	amount := d("10")
	repo := &mockRepo{err: errors.New("boom")}

	_, err := newProvider(repo, &mockMetrics{}).UpdateSettings(context.Background(), &models.UpdateRequest{SecurityDeposit: &amount})
	assert.ErrorIs(t, err, ratesettings.ErrInternal)
}

// noCache никогда не хранит значения, каждое чтение идет в хранилище
type noCache struct{}

func (noCache) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (noCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (noCache) Delete(context.Context, ...string) error                  { return nil }

// flappingRepo отвечает ошибкой на каждый второй вызов
type flappingRepo struct {
	values map[string]string
	calls  int
}

func (r *flappingRepo) GetAll(context.Context) (map[string]string, error) {
	r.calls++
	if r.calls%2 == 0 {
		return nil, errors.New("connection reset")
	}
	return r.values, nil
}

func (r *flappingRepo) Upsert(context.Context, map[string]string) error { return nil }

func TestProvider_Snapshot_ConsistentWhileStoreFlaps(t *testing.T) {
	repo := &flappingRepo{values: map[string]string{
		ratesettings.KeyGroup1Basic:     "21.99",
		ratesettings.KeySecurityDeposit: "300.00",
	}}
	p := ratesettings.NewProvider(repo, noCache{}, time.Minute, &mockMetrics{}, logger.NewNop())

	ctx := p.Snapshot(context.Background())
	assert.Same(t, ctx, p.Snapshot(ctx), "nested snapshot reuses the pinned values")

	rates, err := p.GetRates(ctx, domain.ProtectionGroupStandard)
	require.NoError(t, err)
	deposit := p.GetSecurityDeposit(ctx)
	fees := p.GetDriverFeeSettings(ctx)

	assert.True(t, rates.Basic.Equal(d("21.99")))
	assert.True(t, deposit.Equal(d("300.00")))
	assert.Equal(t, domain.DefaultDriverFeeSettings(), fees)
	assert.Equal(t, 1, repo.calls)

	// без снимка второе чтение попадает на сбой и откатывается на значения по умолчанию
	assert.True(t, p.GetSecurityDeposit(context.Background()).Equal(domain.DefaultSecurityDeposit))
}

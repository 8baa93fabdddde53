package ratesettings

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings/models"
)

// DefaultCacheTTL время жизни кэша настроек по умолчанию
const DefaultCacheTTL = 30 * time.Second

const (
	fallbackStoreError   = "store_error"
	fallbackMissingKey   = "missing_key"
	fallbackInvalidValue = "invalid_value"
)

type snapshotKey struct{}

// Provider источник настраиваемых тарифов
// Читает настройки через кэш; при любых сбоях хранилища отдает значения по умолчанию
type Provider struct {
	repo    SettingsRepository
	cache   Cache
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewProvider создает провайдер тарифов
func NewProvider(repo SettingsRepository, cache Cache, ttl time.Duration, metrics Metrics, logger Logger) *Provider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Provider{
		repo:    repo,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Snapshot загружает настройки один раз и закрепляет их в контексте
// Все чтения с этим контекстом видят один и тот же набор значений
func (p *Provider) Snapshot(ctx context.Context) context.Context {
	if _, ok := ctx.Value(snapshotKey{}).(map[string]string); ok {
		return ctx
	}
	return context.WithValue(ctx, snapshotKey{}, p.load(ctx))
}

// GetRates возвращает таблицу ставок защиты для группы
// Группа 1 настраивается администратором, группы 2 и 3 фиксированы
func (p *Provider) GetRates(ctx context.Context, group domain.ProtectionGroup) (domain.ProtectionRates, error) {
	switch group {
	case domain.ProtectionGroupStandard:
		return p.group1Rates(p.load(ctx)), nil
	case domain.ProtectionGroupSUV:
		return domain.Group2Rates, nil
	case domain.ProtectionGroupLuxury:
		return domain.Group3Rates, nil
	}
	return domain.ProtectionRates{}, fmt.Errorf("%w: unknown protection group %d", domain.ErrValidation, group)
}

// GetDriverFeeSettings возвращает сборы за водителей
func (p *Provider) GetDriverFeeSettings(ctx context.Context) domain.DriverFeeSettings {
	return p.driverFees(p.load(ctx))
}

// GetDropoffFee надбавка за возврат в другую локацию
// Та же локация = 0, затем пара from -> to, затем значение по умолчанию
func (p *Provider) GetDropoffFee(ctx context.Context, fromLocationID, toLocationID int64) decimal.Decimal {
	if fromLocationID == toLocationID {
		return decimal.Zero
	}

	values := p.load(ctx)
	if raw, ok := values[DropoffPairKey(fromLocationID, toLocationID)]; ok {
		if fee, err := decimal.NewFromString(raw); err == nil && !fee.IsNegative() {
			return fee
		}
		p.logger.Warn("GetDropoffFee: invalid value for pair %d->%d: %q, using default", fromLocationID, toLocationID, raw)
		p.metrics.IncSettingsFallback(fallbackInvalidValue)
	}

	return p.decimalValue(values, KeyDropoffFeeDefault, domain.DefaultDropoffFee)
}

// GetSecurityDeposit размер залога, удерживаемого при выдаче
func (p *Provider) GetSecurityDeposit(ctx context.Context) decimal.Decimal {
	return p.decimalValue(p.load(ctx), KeySecurityDeposit, domain.DefaultSecurityDeposit)
}

// GetSettings возвращает все действующие значения
func (p *Provider) GetSettings(ctx context.Context) *models.Settings {
	values := p.load(ctx)

	return &models.Settings{
		Group1:            p.group1Rates(values),
		DriverFees:        p.driverFees(values),
		DropoffFeeDefault: p.decimalValue(values, KeyDropoffFeeDefault, domain.DefaultDropoffFee),
		DropoffOverrides:  dropoffOverrides(values),
		SecurityDeposit:   p.decimalValue(values, KeySecurityDeposit, domain.DefaultSecurityDeposit),
	}
}

// UpdateSettings сохраняет переданные значения и сбрасывает кэш
func (p *Provider) UpdateSettings(ctx context.Context, req *models.UpdateRequest) (*models.Settings, error) {
	p.logger.Info("UpdateSettings: updating rate settings by user=%d", req.UserID)

	// 1. Валидация и сборка пар ключ-значение
	values, err := updateValues(req)
	if err != nil {
		p.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	// 2. Сохранение
	if err := p.repo.Upsert(ctx, values); err != nil {
		p.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %w", ErrInternal, err)
	}

	// 3. Сброс кэша
	if err := p.cache.Delete(ctx, cacheKey); err != nil {
		p.logger.Warn("UpdateSettings: failed to invalidate cache: %v", err)
	}

	p.logger.Info("UpdateSettings: updated %d keys", len(values))
	return p.GetSettings(ctx), nil
}

// load читает настройки из снимка контекста или через кэш
// При ошибке хранилища возвращает пустой набор
func (p *Provider) load(ctx context.Context) map[string]string {
	if values, ok := ctx.Value(snapshotKey{}).(map[string]string); ok {
		return values
	}

	raw, ok, err := p.cache.Get(ctx, cacheKey)
	if err != nil {
		p.logger.Warn("load: cache read failed: %v", err)
	}
	if ok {
		var values map[string]string
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			return values
		}
		p.logger.Warn("load: corrupted cache entry, reloading from store")
	}

	values, err := p.repo.GetAll(ctx)
	if err != nil {
		p.logger.Warn("load: settings store unavailable, using defaults: %v", err)
		p.metrics.IncSettingsFallback(fallbackStoreError)
		return map[string]string{}
	}

	encoded, err := json.Marshal(values)
	if err == nil {
		err = p.cache.Set(ctx, cacheKey, string(encoded), p.ttl)
	}
	if err != nil {
		p.logger.Warn("load: cache write failed: %v", err)
	}

	return values
}

func (p *Provider) group1Rates(values map[string]string) domain.ProtectionRates {
	return domain.ProtectionRates{
		Basic:   p.decimalValue(values, KeyGroup1Basic, domain.DefaultGroup1BasicRate),
		Smart:   p.decimalValue(values, KeyGroup1Smart, domain.DefaultGroup1SmartRate),
		Premium: p.decimalValue(values, KeyGroup1Premium, domain.DefaultGroup1PremiumRate),
	}
}

func (p *Provider) driverFees(values map[string]string) domain.DriverFeeSettings {
	return domain.DriverFeeSettings{
		YoungDriverDaily:           p.decimalValue(values, KeyYoungDriverDaily, domain.DefaultYoungDriverDaily),
		AdditionalDriverDaily:      p.decimalValue(values, KeyAdditionalDriverDaily, domain.DefaultAdditionalDriverDaily),
		YoungAdditionalDriverDaily: p.decimalValue(values, KeyYoungAdditionalDriverDaily, domain.DefaultYoungAdditionalDriverDaily),
	}
}

func (p *Provider) decimalValue(values map[string]string, key string, def decimal.Decimal) decimal.Decimal {
	raw, ok := values[key]
	if !ok {
		p.logger.Warn("settings key %s is not set, using default %s", key, def.StringFixed(2))
		p.metrics.IncSettingsFallback(fallbackMissingKey)
		return def
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		p.logger.Warn("settings key %s has invalid value %q, using default %s", key, raw, def.StringFixed(2))
		p.metrics.IncSettingsFallback(fallbackInvalidValue)
		return def
	}
	return value
}

// dropoffOverrides собирает пары локаций, отсортированные по from, to
func dropoffOverrides(values map[string]string) []models.DropoffOverride {
	overrides := make([]models.DropoffOverride, 0)
	for key, raw := range values {
		from, to, ok := parseDropoffPairKey(key)
		if !ok {
			continue
		}
		fee, err := decimal.NewFromString(raw)
		if err != nil || fee.IsNegative() {
			continue
		}
		overrides = append(overrides, models.DropoffOverride{FromLocationID: from, ToLocationID: to, Fee: fee})
	}

	sort.Slice(overrides, func(i, j int) bool {
		if overrides[i].FromLocationID != overrides[j].FromLocationID {
			return overrides[i].FromLocationID < overrides[j].FromLocationID
		}
		return overrides[i].ToLocationID < overrides[j].ToLocationID
	})
	return overrides
}

func updateValues(req *models.UpdateRequest) (map[string]string, error) {
	values := make(map[string]string)

	fields := []struct {
		key   string
		value *decimal.Decimal
	}{
		{KeyGroup1Basic, req.Group1Basic},
		{KeyGroup1Smart, req.Group1Smart},
		{KeyGroup1Premium, req.Group1Premium},
		{KeyYoungDriverDaily, req.YoungDriverDaily},
		{KeyAdditionalDriverDaily, req.AdditionalDriverDaily},
		{KeyYoungAdditionalDriverDaily, req.YoungAdditionalDriverDaily},
		{KeyDropoffFeeDefault, req.DropoffFeeDefault},
		{KeySecurityDeposit, req.SecurityDeposit},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if f.value.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, f.key)
		}
		values[f.key] = f.value.StringFixed(2)
	}

	for _, o := range req.DropoffOverrides {
		if o.FromLocationID <= 0 || o.ToLocationID <= 0 {
			return nil, fmt.Errorf("%w: dropoff override location ids must be positive", ErrInvalidInput)
		}
		if o.FromLocationID == o.ToLocationID {
			return nil, fmt.Errorf("%w: dropoff override for the same location %d", ErrInvalidInput, o.FromLocationID)
		}
		if o.Fee.IsNegative() {
			return nil, fmt.Errorf("%w: dropoff fee must not be negative", ErrInvalidInput)
		}
		values[DropoffPairKey(o.FromLocationID, o.ToLocationID)] = o.Fee.StringFixed(2)
	}

	return values, nil
}

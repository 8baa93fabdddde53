package quoting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/addons"
	"github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
	"github.com/m04kA/SMC-CarRentalService/internal/service/pricing"
)

// RateProvider источник настраиваемых тарифов
type RateProvider interface {
	Snapshot(ctx context.Context) context.Context
	GetRates(ctx context.Context, group domain.ProtectionGroup) (domain.ProtectionRates, error)
	GetDriverFeeSettings(ctx context.Context) domain.DriverFeeSettings
	GetDropoffFee(ctx context.Context, fromLocationID, toLocationID int64) decimal.Decimal
	GetSecurityDeposit(ctx context.Context) decimal.Decimal
}

// AddOnCalculator расчет дополнительных опций
type AddOnCalculator interface {
	Total(ctx context.Context, ids []int64, days int, vehicle *domain.Vehicle) (*addons.Selection, error)
}

// DeliveryQuoter расчет доставки
type DeliveryQuoter interface {
	Quote(ctx context.Context, locationID int64, destination domain.GeoPoint) (*delivery.Quote, error)
}

// Calculator калькулятор стоимости
type Calculator interface {
	Calculate(in pricing.Input) (*domain.PriceBreakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

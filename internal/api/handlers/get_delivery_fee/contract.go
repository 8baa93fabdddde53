package get_delivery_fee

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
)

type DeliveryService interface {
	Quote(ctx context.Context, locationID int64, destination domain.GeoPoint) (*delivery.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_add_ons

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

type AddOnService interface {
	Catalog(ctx context.Context) ([]*domain.AddOn, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

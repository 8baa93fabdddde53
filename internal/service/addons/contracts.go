package addons

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// AddOnRepository интерфейс репозитория опций
type AddOnRepository interface {
	ListActive(ctx context.Context) ([]*domain.AddOn, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package release_hold

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Hold, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.HoldStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_rate_settings

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings/models"
)

type SettingsService interface {
	GetSettings(ctx context.Context) *models.Settings
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

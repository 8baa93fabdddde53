package ratesettings

import (
	"context"
	"time"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
}

// Cache интерфейс кэша настроек (память процесса или Redis)
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Metrics счетчик откатов на значения по умолчанию
type Metrics interface {
	IncSettingsFallback(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

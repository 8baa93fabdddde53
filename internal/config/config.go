package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Pricing   PricingConfig   `toml:"pricing"`
	Holds     HoldsConfig     `toml:"holds"`
	Jobs      JobsConfig      `toml:"jobs"`
	Maps      MapsConfig      `toml:"maps"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки общего кэша настроек тарифов
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PricingConfig политики расчета цены
type PricingConfig struct {
	// WeekendPolicy "per_day" (каждый день Пт/Сб/Вс) или "pickup_day" (по дню получения)
	WeekendPolicy string `toml:"weekend_policy"`
	// TaxRegulatoryFees облагать ли регуляторные сборы PST/GST
	TaxRegulatoryFees bool `toml:"tax_regulatory_fees"`
	// SettingsCacheTTL время жизни кэша настроек тарифов в секундах
	SettingsCacheTTL int `toml:"settings_cache_ttl"`
}

// HoldsConfig настройки холдов
type HoldsConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// JobsConfig настройки фоновых задач (cron-выражения с секундами)
type JobsConfig struct {
	Enabled             bool   `toml:"enabled"`
	ExpireHoldsSchedule string `toml:"expire_holds_schedule"`
}

// MapsConfig настройки Google Maps Distance Matrix
type MapsConfig struct {
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig ограничение запросов с одного IP на публичных ручках
type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	// TrustedProxies адреса или CIDR балансировщиков, которым доверяем X-Forwarded-For
	TrustedProxies    []string `toml:"trusted_proxies"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переменные окружения для секретов
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "car-rental:rate-settings",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "car-rental-service",
		},
		Pricing: PricingConfig{
			WeekendPolicy:    "per_day",
			SettingsCacheTTL: 30,
		},
		Holds: HoldsConfig{
			TTLMinutes: 15,
		},
		Jobs: JobsConfig{
			Enabled:             true,
			ExpireHoldsSchedule: "0 * * * * *",
		},
		Maps: MapsConfig{
			Timeout: 5,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// applyEnv переопределяет секреты и адреса из переменных окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("MAPS_API_KEY"); v != "" {
		cfg.Maps.APIKey = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Pricing.WeekendPolicy != "per_day" && c.Pricing.WeekendPolicy != "pickup_day" {
		return fmt.Errorf("%w: pricing.weekend_policy must be per_day or pickup_day, got %q",
			ErrInvalidConfig, c.Pricing.WeekendPolicy)
	}
	if c.Pricing.SettingsCacheTTL < 0 {
		return fmt.Errorf("%w: pricing.settings_cache_ttl must not be negative", ErrInvalidConfig)
	}
	if c.Holds.TTLMinutes <= 0 {
		return fmt.Errorf("%w: holds.ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	return nil
}

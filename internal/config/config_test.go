package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "car_rental"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "per_day", cfg.Pricing.WeekendPolicy)
	assert.False(t, cfg.Pricing.TaxRegulatoryFees)
	assert.Equal(t, 30, cfg.Pricing.SettingsCacheTTL)
	assert.Equal(t, 15, cfg.Holds.TTLMinutes)
	assert.Equal(t, "0 * * * * *", cfg.Jobs.ExpireHoldsSchedule)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileOverridesAndEnv(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "rental"
password = "from-file"
dbname = "car_rental"

[pricing]
weekend_policy = "pickup_day"
tax_regulatory_fees = true

[cors]
allowed_origins = ["https://rent.example.com"]
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("MAPS_API_KEY", "maps-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "maps-key", cfg.Maps.APIKey)
	assert.Equal(t, "pickup_day", cfg.Pricing.WeekendPolicy)
	assert.True(t, cfg.Pricing.TaxRegulatoryFees)
	assert.Equal(t, []string{"https://rent.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=db port=5432 user=rental password=from-env dbname=car_rental sslmode=disable", cfg.Database.DSN())
}

func TestLoad_InvalidWeekendPolicy(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "car_rental"

[pricing]
weekend_policy = "sometimes"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

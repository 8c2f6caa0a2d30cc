package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, EnvProduction, cfg.Global.Environment)
	assert.False(t, cfg.IsDevelopment())

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Database.DSN)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)

	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Docs.SwaggerEnabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Seed.OnStart)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("DATABASE_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_DSN", "host=localhost dbname=library")
	t.Setenv("DATABASE_CONN_MAX_LIFETIME", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://library.example.com,")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SEED_ON_START", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.Docs.SwaggerEnabled, "swagger defaults on in development")
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=library", cfg.Database.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:3000", "https://library.example.com"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Seed.OnStart)
}

func TestNewConfig_LegacyConnectionString(t *testing.T) {
	t.Setenv(LegacyConnectionStringKey, "/var/lib/library/legacy.db")

	cfg := NewConfig()
	assert.Equal(t, "/var/lib/library/legacy.db", cfg.Database.DSN)

	t.Setenv("DATABASE_DSN", "/var/lib/library/current.db")
	cfg = NewConfig()
	assert.Equal(t, "/var/lib/library/current.db", cfg.Database.DSN, "DATABASE_DSN takes precedence")
}

func TestNewConfig_SwaggerOverride(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SWAGGER_ENABLED", "true")

	cfg := NewConfig()
	assert.True(t, cfg.Docs.SwaggerEnabled)
}

func TestNewConfig_EnvironmentCaseInsensitive(t *testing.T) {
	t.Setenv("APP_ENV", "DEVELOPMENT")

	cfg := NewConfig()
	assert.Equal(t, EnvDevelopment, cfg.Global.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.Docs.SwaggerEnabled)
}

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		CORS
		Docs
		Metrics
		Seed
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		Environment              string // "development" or "production"
	}
	Database struct {
		Driver          string // sqlite, postgres or mysql
		DSN             string
		LogLevel        string // silent, error, warn, info
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
	}
	CORS struct {
		AllowedOrigins []string // Empty disables CORS handling
	}
	Docs struct {
		SwaggerEnabled bool
	}
	Metrics struct {
		Enabled bool
	}
	Seed struct {
		OnStart bool // Seed the embedded fixture into an empty catalog at startup
	}
)

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Global.Environment == EnvDevelopment
}

// getDatabaseDSN returns the connection string, checking both new and legacy env vars
func getDatabaseDSN(v *viper.Viper) string {
	if dsn := v.GetString("DATABASE_DSN"); dsn != "" {
		return dsn
	}
	if dsn := v.GetString(LegacyConnectionStringKey); dsn != "" {
		return dsn
	}
	return DefaultDatabaseDSN
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("app_env", EnvProduction)

	// Database defaults
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", "30m")

	v.SetDefault("cors_allowed_origins", "")
	env := strings.ToLower(v.GetString("APP_ENV"))
	v.SetDefault("swagger_enabled", env == EnvDevelopment)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("seed_on_start", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Environment:              env,
		},
		Database: Database{
			Driver:          strings.ToLower(v.GetString("DATABASE_DRIVER")),
			DSN:             getDatabaseDSN(v),
			LogLevel:        strings.ToLower(v.GetString("DATABASE_LOG_LEVEL")),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Docs: Docs{
			SwaggerEnabled: v.GetBool("SWAGGER_ENABLED"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Seed: Seed{
			OnStart: v.GetBool("SEED_ON_START"),
		},
	}
}

package config

const (
	// DefaultDatabaseDSN is the SQLite file used when no connection string is configured
	DefaultDatabaseDSN = "./loncotes-library.db"

	// LegacyConnectionStringKey is the connection string variable used by earlier deployments
	LegacyConnectionStringKey = "LONCOTES_LIBRARY_DB_CONNECTION_STRING"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Application environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

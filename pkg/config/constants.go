package config

// EnvPrefix scopes every environment variable the loader reads.
const EnvPrefix = "MUSKIECO"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv = "MUSKIECO_APP_ENV"
	EnvDBDSN  = "MUSKIECO_DB_DSN"
	EnvDBHost = "MUSKIECO_DB_HOST"
	EnvDBUser = "MUSKIECO_DB_USER"
	EnvDBName = "MUSKIECO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

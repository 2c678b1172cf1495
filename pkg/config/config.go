package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MUSKIECO_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"MUSKIECO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MUSKIECO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MUSKIECO_DB_DSN"`
	Driver string `envconfig:"MUSKIECO_DB_DRIVER" default:"sqlite"`

	// SQLitePath backs the sqlite driver; ignored for postgres.
	SQLitePath string `envconfig:"MUSKIECO_DB_SQLITE_PATH" default:"muskieco.db"`

	LegacyHost     string `envconfig:"MUSKIECO_DB_HOST"`
	LegacyPort     int    `envconfig:"MUSKIECO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MUSKIECO_DB_USER"`
	LegacyPassword string `envconfig:"MUSKIECO_DB_PASSWORD"`
	LegacyName     string `envconfig:"MUSKIECO_DB_NAME"`
	LegacySSLMode  string `envconfig:"MUSKIECO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MUSKIECO_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MUSKIECO_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MUSKIECO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MUSKIECO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// UsesSQLite reports whether the sqlite dialector should back the client.
func (db DBConfig) UsesSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MUSKIECO_AUTO_MIGRATE" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.UsesSQLite() {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}

	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

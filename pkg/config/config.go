package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "POSTRES_DB_DSN"
	EnvDBHost = "POSTRES_DB_HOST"
	EnvDBUser = "POSTRES_DB_USER"
	EnvDBName = "POSTRES_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
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
	Env          string `envconfig:"POSTRES_APP_ENV" default:"dev"`
	Port         string `envconfig:"POSTRES_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"POSTRES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"POSTRES_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"POSTRES_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"POSTRES_DB_DSN"`
	Driver string `envconfig:"POSTRES_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"POSTRES_DB_HOST"`
	LegacyPort     int    `envconfig:"POSTRES_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"POSTRES_DB_USER"`
	LegacyPassword string `envconfig:"POSTRES_DB_PASSWORD"`
	LegacyName     string `envconfig:"POSTRES_DB_NAME"`
	LegacySSLMode  string `envconfig:"POSTRES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"POSTRES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"POSTRES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"POSTRES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"POSTRES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"POSTRES_REDIS_URL"`
	Address      string        `envconfig:"POSTRES_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"POSTRES_REDIS_PASSWORD"`
	DB           int           `envconfig:"POSTRES_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"POSTRES_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"POSTRES_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"POSTRES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"POSTRES_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"POSTRES_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig drives the visitor session cookie and its Redis backing.
type SessionConfig struct {
	Secret     string        `envconfig:"POSTRES_SESSION_SECRET" required:"true"`
	Issuer     string        `envconfig:"POSTRES_SESSION_ISSUER" default:"postres"`
	CookieName string        `envconfig:"POSTRES_SESSION_COOKIE" default:"postres_session"`
	TTL        time.Duration `envconfig:"POSTRES_SESSION_TTL" default:"24h"`
	Secure     bool          `envconfig:"POSTRES_SESSION_SECURE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
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

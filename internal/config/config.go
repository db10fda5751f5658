package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string   `env:"APP_NAME,required"`
	Environment string   `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string   `env:"HTTP_PORT,required"`
	BaseURL     string   `env:"API_BASE_URL" envDefault:"/api"`
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type StoreConfig struct {
	Driver   string `env:"STORE_DRIVER" envDefault:"memory"`
	SeedDemo bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns   int32         `env:"DB_POOL_MAX_CONNS"`
	PoolMinConns   int32         `env:"DB_POOL_MIN_CONNS"`

	AutoMigrate   bool   `env:"MIGRATIONS_AUTO" envDefault:"true"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid configuration")
)

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		if missing := missingKeys(err); len(missing) > 0 {
			return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
		}
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		var missing []string
		if strings.TrimSpace(c.Database.DBHost) == "" {
			missing = append(missing, "DB_HOST")
		}
		if strings.TrimSpace(c.Database.DBName) == "" {
			missing = append(missing, "DB_NAME")
		}
		if strings.TrimSpace(c.Database.DBUser) == "" {
			missing = append(missing, "DB_USER")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", errInvalidConfig, c.Store.Driver)
	}

	c.App.BaseURL = strings.TrimRight(strings.TrimSpace(c.App.BaseURL), "/")
	return nil
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, "development")
}

func missingKeys(err error) []string {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil
	}
	var out []string
	for _, e := range agg.Errors {
		var notSet env.EnvVarIsNotSetError
		if errors.As(e, &notSet) {
			out = append(out, notSet.Key)
		}
	}
	return out
}

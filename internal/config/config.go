package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `envPrefix:"SERVER_"`
	LogLevel  string          `env:"LOG_LEVEL" envDefault:"info"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Fixture   FixtureConfig   `envPrefix:"FIXTURE_"`
	Postgres  PostgresConfig  `envPrefix:"POSTGRES_"`
	Auth      AuthConfig      `envPrefix:"AUTH_"`
	Dashboard DashboardConfig `envPrefix:"DASHBOARD_"`
}

type ServerConfig struct {
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"8080"`
}

// RedisConfig leaves Addr empty to run without Redis: the flag store falls
// back to memory and the dashboard is not cached.
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	FlagTTL  time.Duration `env:"FLAG_TTL" envDefault:"12h"`
}

type FixtureConfig struct {
	Source string `env:"SOURCE" envDefault:"embedded"`
}

type PostgresConfig struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"DB"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	Migrate  bool   `env:"MIGRATE" envDefault:"true"`
}

type AuthConfig struct {
	Email         string        `env:"EMAIL" envDefault:"admin@venueproximity.com"`
	Password      string        `env:"PASSWORD" envDefault:"Admin123!"`
	Code          string        `env:"CODE" envDefault:"123456"`
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

type DashboardConfig struct {
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.Fixture.Source == "postgres" {
		var missing []string
		if c.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if c.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if c.Postgres.Name == "" {
			missing = append(missing, "POSTGRES_DB")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("missing AUTH_JWT_SECRET")
	}

	if c.Auth.SweepInterval <= 0 {
		return errors.New("AUTH_SWEEP_INTERVAL must be positive")
	}

	return nil
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

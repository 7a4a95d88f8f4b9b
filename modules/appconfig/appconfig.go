package appconfig

import (
	"time"

	"studentapi/modules/db/postgres"
	"studentapi/modules/db/redis"
	"studentapi/modules/middleware/ratelimit"
	"studentapi/modules/telemetry"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env string `env:"ENV" envDefault:"dev"`

	// --- core infra ----
	HTTP     ServerConfig            `envPrefix:"HTTP_"`
	Redis    redis.RedisConfig       `envPrefix:"REDIS_"`
	Postgres postgres.PostgresConfig `envPrefix:"POSTGRES_"`

	// --- collaborators ----
	Address AddressClientConfig `envPrefix:"ADDRESS_CLIENT_"`

	// --- middlewares ----
	RateLimit ratelimit.RestHTTPConfig `envPrefix:"RATE_LIMIT_"`

	// --- otel ----
	// since it has special naming conventions, we do not use prefix here
	Otel telemetry.Config
}

type ServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
}

// AddressClientConfig configures the outbound call to the address
// collaborator. Timeout bounds the whole request round trip.
type AddressClientConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8081"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"5s"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Example central validation
func validate(c *Config) error {
	// e.g. different rules per ENV
	return nil
}

// AddressServiceConfig is the standalone address collaborator's config.
// It carries no infra; the service is stateless.
type AddressServiceConfig struct {
	Env  string `env:"ENV" envDefault:"dev"`
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8081"`
}

func LoadAddressService() (*AddressServiceConfig, error) {
	cfg, err := env.ParseAs[AddressServiceConfig]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

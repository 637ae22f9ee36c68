package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process-wide settings. It is loaded once at startup and
// treated as immutable for the lifetime of the process; secrets and
// lifespans are never mutated after Load returns.
type Config struct {
	Port     string `env:"APP_PORT, default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	BaseURL  string `env:"BASE_URL, default=http://localhost:3000"`

	TokenSecret    string        `env:"TOKEN_SECRET"`
	TokenLifespan  time.Duration `env:"TOKEN_LIFESPAN,  default=72h"`
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT, default=1h"`
	BcryptCost     int           `env:"BCRYPT_COST,     default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mock_premier_league"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether the process runs in a production-like
// environment; it controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	StoreDriver    string `env:"STORE_DRIVER" envDefault:"memory"`
	DBUrl          string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"internal/repository/postgres/migrations"`
	RedisURL       string `env:"REDIS_URL"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"poap:"`

	// APIKeys maps caller address to the bcrypt hash of its API key: addr1:hash1,addr2:hash2
	APIKeys       map[string]string `env:"API_KEYS"`
	JWTSecret     string            `env:"JWT_SECRET"`
	JWTExpiry     time.Duration     `env:"JWT_EXPIRY" envDefault:"24h"`
	AddressPrefix string            `env:"ADDRESS_PREFIX" envDefault:"poap"`

	// AdminAddress instantiates the contract on first start.
	AdminAddress   string        `env:"ADMIN_ADDRESS"`
	InitialCount   int32         `env:"INITIAL_COUNT" envDefault:"0"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`

	Mail Mail
}

// Mail configures notification e-mails. With no recipients nothing is sent.
type Mail struct {
	Provider              string   `env:"MAIL_PROVIDER" envDefault:"noop"`
	FromAddress           string   `env:"MAIL_FROM_ADDRESS"`
	FromName              string   `env:"MAIL_FROM_NAME" envDefault:"POAP Registry"`
	Recipients            []string `env:"NOTIFY_RECIPIENTS"`
	SESRegion             string   `env:"AWS_REGION" envDefault:"us-east-1"`
	SESAccessKeyID        string   `env:"AWS_ACCESS_KEY_ID"`
	SESSecretAccessKey    string   `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool     `env:"SES_INSECURE_SKIP_VERIFY"`
}

// Load loads configuration from environment variables.
// Outside production it first loads a .env file if one exists.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		// .env is optional; production relies on the process environment.
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env file couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DBUrl == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres store"))
		}
	case StoreRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY must be positive"))
	}
	if c.Mail.Provider == "ses" && c.Mail.FromAddress == "" {
		errs = append(errs, errors.New("MAIL_FROM_ADDRESS is required for the ses provider"))
	}
	return errors.Join(errs...)
}

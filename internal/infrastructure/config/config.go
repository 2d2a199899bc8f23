package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// BaseURL is embedded in confirmation-email links.
	BaseURL string `env:"BASE_URL, default=http://localhost:8080"`

	JWT       JWTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Mail      MailConfig
	S3        S3Config
	RateLimit RateLimitConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// Algorithm is fixed to HS256; the identifier is configurable only so a
	// mis-set environment fails fast at startup instead of at decode time.
	Algorithm  string        `env:"JWT_ALGORITHM,   default=HS256"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL,  default=15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL, default=168h"`
	ConfirmTTL time.Duration `env:"JWT_CONFIRM_TTL, default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=contacts_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MailConfig struct {
	Host     string `env:"MAIL_SERVER,   default=localhost"`
	Port     int    `env:"MAIL_PORT,     default=587"`
	Username string `env:"MAIL_USERNAME"`
	Password string `env:"MAIL_PASSWORD"`
	From     string `env:"MAIL_FROM,     default=noreply@contacts.local"`
}

type S3Config struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION,  default=us-east-1"`
	Bucket    string `env:"S3_BUCKET,  default=contacts-avatars"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	// PublicBaseURL overrides the generated object URL, e.g. a CDN host.
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=10"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// Validate enforces the settings without which the process must not start.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.Algorithm != "HS256" {
		return fmt.Errorf("unsupported JWT algorithm %q: only HS256 is supported", c.JWT.Algorithm)
	}
	return nil
}

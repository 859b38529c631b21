package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string        `env:"PORT" envDefault:"8080"`
	DatabaseType    string        `env:"DB_TYPE" envDefault:"sqlite"`
	DatabasePath    string        `env:"DB_PATH" envDefault:"./versekids.db"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	MigrationsPath  string        `env:"MIGRATIONS_PATH" envDefault:"./migrations"`
	AudioPath       string        `env:"AUDIO_PATH" envDefault:"./audio"`
	DefaultTimezone string        `env:"DEFAULT_TIMEZONE" envDefault:"UTC"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenDuration   time.Duration `env:"TOKEN_DURATION" envDefault:"720h"`
	AdminKeyHash    string        `env:"ADMIN_KEY_HASH"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	AWSRegion       string        `env:"AWS_REGION" envDefault:"us-east-1"`
	SESFromEmail    string        `env:"SES_FROM_EMAIL"`
	SESFromName     string        `env:"SES_FROM_NAME" envDefault:"Verse Kids"`
	AppBaseURL      string        `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	PrefetchTTL     time.Duration `env:"PREFETCH_TTL" envDefault:"6h"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Debug           bool          `env:"DEBUG" envDefault:"false"`
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable default
func (c *Config) Validate() error {
	switch strings.ToLower(c.DatabaseType) {
	case "sqlite", "sqlite3", "":
	case "postgres", "postgresql", "mysql":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for DB_TYPE=%s", c.DatabaseType)
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", c.DatabaseType)
	}
	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", c.DefaultTimezone, err)
	}
	if c.JWTSecret == "" && !c.Debug {
		return errors.New("JWT_SECRET is required unless DEBUG is set")
	}
	return nil
}

// Location returns the default time zone for learners without one
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL to a slog level. DEBUG forces debug logging.
func (c *Config) SlogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

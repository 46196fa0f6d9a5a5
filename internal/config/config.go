package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabaseURL    = "hotelbooking.db"
	defaultHTTPAddr       = ":8080"
	defaultRetryMax       = "2"
	defaultRetryBaseDelay = "50ms"
)

// Config is the process runtime configuration, sourced from the
// environment with sane development defaults.
type Config struct {
	AppEnv      string
	DatabaseURL string
	HTTPAddr    string

	// Bounded retry budget for uniqueness-constraint races.
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))

	var err error
	cfg.RetryMaxAttempts, err = parseIntEnv("BOOKING_RETRY_MAX", defaultRetryMax)
	if err != nil {
		return nil, err
	}
	cfg.RetryBaseDelay, err = parseDurationEnv("BOOKING_RETRY_BASE_DELAY", defaultRetryBaseDelay)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.RetryMaxAttempts < 0 {
		return fmt.Errorf("BOOKING_RETRY_MAX must be >= 0")
	}
	if cfg.RetryBaseDelay <= 0 {
		return fmt.Errorf("BOOKING_RETRY_BASE_DELAY must be > 0")
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key, def string) (int, error) {
	raw := getEnv(key, def)
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return v, nil
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return v, nil
}

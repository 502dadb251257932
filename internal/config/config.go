// Package config reads the site's runtime configuration from TAROTSITE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings. CLI flags override these values.
type Config struct {
	Addr            string        `env:"TAROTSITE_ADDR"             envDefault:":8080"`
	ContentDir      string        `env:"TAROTSITE_CONTENT_DIR"`
	PublicDir       string        `env:"TAROTSITE_PUBLIC_DIR"`
	Watch           bool          `env:"TAROTSITE_WATCH"`
	Theme           string        `env:"TAROTSITE_THEME"`
	ThemeVariant    string        `env:"TAROTSITE_THEME_VARIANT"`
	LogLevel        string        `env:"TAROTSITE_LOG_LEVEL"        envDefault:"info"`
	Dev             bool          `env:"TAROTSITE_DEV"`
	CarouselWindow  int           `env:"TAROTSITE_CAROUSEL_WINDOW"  envDefault:"3"`
	AutoAdvance     time.Duration `env:"TAROTSITE_AUTO_ADVANCE"     envDefault:"8s"`
	ShutdownTimeout time.Duration `env:"TAROTSITE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Phone           string        `env:"TAROTSITE_WHATSAPP_PHONE"`
	Domain          string        `env:"TAROTSITE_DOMAIN"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the process environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads Config from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("config: address is required"))
	}
	if c.CarouselWindow <= 0 {
		errs = append(errs, fmt.Errorf("config: carousel window must be positive, got %d", c.CarouselWindow))
	}
	if c.AutoAdvance < 0 {
		errs = append(errs, fmt.Errorf("config: auto-advance must not be negative, got %s", c.AutoAdvance))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if c.Watch && strings.TrimSpace(c.ContentDir) == "" {
		errs = append(errs, errors.New("config: watching requires a content directory"))
	}
	return errors.Join(errs...)
}

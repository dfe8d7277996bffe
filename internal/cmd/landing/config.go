package landing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	platformcmd "github.com/rotaract-dypcoe/landing/internal/platform/cmd"
	"github.com/rotaract-dypcoe/landing/internal/platform/config"
	"github.com/spf13/pflag"
)

// Config holds the landing command configuration. Environment variables
// (prefixed ROTARACT_LANDING_) set the defaults; flags override them.
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	AssetBaseURL   string        `env:"ASSET_BASE_URL"`
	PublicDir      string        `env:"PUBLIC_DIR" envDefault:"public"`
	SlideInterval  time.Duration `env:"SLIDE_INTERVAL" envDefault:"5s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool          `env:"LOG_DEVELOPMENT"`
}

// LoadConfig reads configuration from environment. A nil map reads the
// process environment.
func LoadConfig(environment map[string]string) (Config, error) {
	var cfg Config
	if environment == nil {
		if err := platformcmd.ParseConfig(&cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err := config.ParseEnvWithLookup(&cfg, environment); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers flags overriding cfg on fs.
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Image CDN base URL (empty serves /images/)")
	fs.StringVar(&cfg.PublicDir, "public-dir", cfg.PublicDir, "Directory served at /images/")
	fs.DurationVar(&cfg.SlideInterval, "slide-interval", cfg.SlideInterval, "Carousel auto-advance interval")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.LogDevelopment, "log-development", cfg.LogDevelopment, "Human-readable development logs")
}

// Validate reports configuration that cannot start the service.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return errors.New("http address is required")
	}
	if cfg.SlideInterval <= 0 {
		return fmt.Errorf("slide interval must be positive, got %s", cfg.SlideInterval)
	}
	return nil
}

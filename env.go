package coinpayments

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig is the environment surface for FromEnv. All variables carry
// the COINPAYMENTS_ prefix, e.g. COINPAYMENTS_PUBLIC_KEY.
type envConfig struct {
	PublicKey   string        `envconfig:"PUBLIC_KEY" required:"true"`
	PrivateKey  string        `envconfig:"PRIVATE_KEY" required:"true"`
	BaseURL     string        `envconfig:"BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"`
}

// FromEnv constructs a Client from COINPAYMENTS_* environment variables.
// Options given here are applied after the environment-derived ones and
// may override them.
func FromEnv(opts ...Option) (*Client, error) {
	var cfg envConfig
	if err := envconfig.Process("COINPAYMENTS", &cfg); err != nil {
		return nil, fmt.Errorf("coinpayments: load env config: %w", err)
	}

	envOpts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Debug {
		envOpts = append(envOpts, WithDebugLogging(true))
	}

	return New(cfg.PublicKey, cfg.PrivateKey, append(envOpts, opts...)...)
}

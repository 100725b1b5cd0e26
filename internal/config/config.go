package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the demo's environment settings.
type Config struct {
	Environment string `env:"USERPILOT_ENVIRONMENT" envDefault:"development"`
	Token       string `env:"USERPILOT_TOKEN"`
	Logging     bool   `env:"USERPILOT_LOGGING" envDefault:"false"`
	Scenario    string `env:"USERPILOT_SCENARIO" envDefault:"cmd/demo/scenario.yaml"`
}

// Load reads Config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

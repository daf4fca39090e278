package app

import (
	"fmt"

	"github.com/specialistvlad/massplot/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Settings config.Settings
	// Attributes are the positional arguments; empty or "*" means every
	// attribute of the fusion directory.
	Attributes []string
	// Watch keeps the app running and re-renders attributes whose files change.
	Watch bool
	// HealthcheckPort serves /health while watching. 0 is disabled.
	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid configuration: healthcheck port %d out of range", cfg.HealthcheckPort)
	}
	return &cfg, nil
}

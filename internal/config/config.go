// Package config defines the tools-hub configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/CodexForgeBR/tools-hub/internal/model"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [8]string{
	"GEMINI_API_KEY",
	"MODELS",
	"MAX_RETRIES",
	"INITIAL_DELAY_MS",
	"MAX_DELAY_MS",
	"ATTEMPT_TIMEOUT",
	"VERBOSE",
	"METRICS",
}

// Config holds every configuration field for the tools-hub CLI.
type Config struct {
	// Backend credentials.
	APIKey string

	// Ordered model variants. Empty means the tool's own defaults.
	Models []string

	// Retry schedule.
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	AttemptTimeout time.Duration

	// Runtime flags.
	Verbose bool

	// Path of a Prometheus text file written after each run. Empty disables.
	MetricsFile string

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:     2,
		InitialDelay:   time.Second,
		MaxDelay:       30 * time.Second,
		AttemptTimeout: 60 * time.Second,
	}
}

// Validate checks the merged configuration. Errors name the config key so a
// bad value in a config file can be traced back to its line.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("MAX_RETRIES must be >= 0, got %d", c.MaxRetries))
	}
	if c.InitialDelay <= 0 {
		errs = append(errs, fmt.Errorf("INITIAL_DELAY_MS must be > 0, got %s", c.InitialDelay))
	}
	if c.MaxDelay < 0 {
		errs = append(errs, fmt.Errorf("MAX_DELAY_MS must be >= 0, got %s", c.MaxDelay))
	}
	if c.AttemptTimeout < 0 {
		errs = append(errs, fmt.Errorf("ATTEMPT_TIMEOUT must be >= 0, got %s", c.AttemptTimeout))
	}
	for _, m := range c.Models {
		if err := model.ValidateModel(m, "MODELS"); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

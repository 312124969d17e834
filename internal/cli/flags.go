// Package cli provides flag binding and validation for the tools-hub CLI.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/tools-hub/internal/config"
	"github.com/CodexForgeBR/tools-hub/internal/model"
)

// BindFlags registers the shared flags as persistent flags on cmd so every
// tool subcommand accepts them. The flags directly modify fields in the
// provided config pointer. Call ValidateFlags after parsing.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	// Backend & Models
	flags.StringVar(&cfg.APIKey, "api-key", "", "Gemini API key (default: $GEMINI_API_KEY)")
	flags.StringSliceVarP(&cfg.Models, "model", "m", nil, "Model variant to try, in order (repeatable)")

	// Retry & Fallback
	flags.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Retries per model after the first attempt")
	flags.DurationVar(&cfg.InitialDelay, "initial-delay", cfg.InitialDelay, "Backoff before the first retry")
	flags.DurationVar(&cfg.MaxDelay, "max-delay", cfg.MaxDelay, "Cap on a single backoff wait (0 = no cap)")
	flags.DurationVar(&cfg.AttemptTimeout, "attempt-timeout", cfg.AttemptTimeout, "Timeout for a single attempt (0 = none)")

	// Output
	flags.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every attempt")

	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("--max-retries must be >= 0, got: %d", cfg.MaxRetries)
	}
	if cfg.InitialDelay <= 0 {
		return fmt.Errorf("--initial-delay must be > 0, got: %s", cfg.InitialDelay)
	}
	if cfg.MaxDelay < 0 {
		return fmt.Errorf("--max-delay must be >= 0, got: %s", cfg.MaxDelay)
	}
	if cfg.AttemptTimeout < 0 {
		return fmt.Errorf("--attempt-timeout must be >= 0, got: %s", cfg.AttemptTimeout)
	}

	for _, m := range cfg.Models {
		if err := model.ValidateModel(m, "--model"); err != nil {
			return err
		}
	}

	return nil
}

// Overrides returns the config-file keys for flags the user set explicitly.
// Unchanged flags are left out so config file values are not replaced by
// flag defaults.
func Overrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	flags := cmd.Flags()
	overrides := make(map[string]string)

	set := func(flag, key, val string) {
		if flags.Changed(flag) {
			overrides[key] = val
		}
	}

	set("api-key", "GEMINI_API_KEY", cfg.APIKey)
	set("model", "MODELS", strings.Join(cfg.Models, ","))
	set("max-retries", "MAX_RETRIES", strconv.Itoa(cfg.MaxRetries))
	set("initial-delay", "INITIAL_DELAY_MS", cfg.InitialDelay.String())
	set("max-delay", "MAX_DELAY_MS", cfg.MaxDelay.String())
	set("attempt-timeout", "ATTEMPT_TIMEOUT", cfg.AttemptTimeout.String())
	set("metrics-file", "METRICS", cfg.MetricsFile)
	set("verbose", "VERBOSE", strconv.FormatBool(cfg.Verbose))

	return overrides
}

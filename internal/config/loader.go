package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// API key environment variables, in lookup order.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvPublicAPIKey = "NEXT_PUBLIC_GEMINI_API_KEY"
)

// GlobalPath returns ~/.config/tools-hub/config, or "" if the home
// directory cannot be determined.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tools-hub", "config")
}

// ProjectPath is the per-directory config file.
const ProjectPath = ".tools-hub"

// LoadFile parses a KEY=VALUE config file at the given path.
//
// Lines are processed according to these rules:
//   - Empty lines and lines starting with # are skipped.
//   - Lines without an = sign are skipped.
//   - Leading and trailing whitespace is trimmed from both key and value.
//   - Keys not present in WhitelistedVars are silently ignored.
//
// Returns a map of whitelisted key-value pairs, or an error if the file
// cannot be opened.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	result := make(map[string]string)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !whitelistSet[key] {
			continue
		}

		result[key] = unquote(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return result, nil
}

// unquote strips one layer of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Global config file (globalPath)
//  3. Project config file (projectPath)
//  4. Explicit config file (explicitPath)
//  5. CLI overrides (cliOverrides map)
//
// Any path that is empty is silently skipped. Missing global and project
// files are not errors; a missing explicit file is. Values that fail to
// parse are reported with the key that carried them.
func LoadWithPrecedence(globalPath, projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	layers := []struct {
		name     string
		path     string
		optional bool
	}{
		{"global config", globalPath, true},
		{"project config", projectPath, true},
		{"explicit config", explicitPath, false},
	}

	for _, l := range layers {
		if l.path == "" {
			continue
		}
		m, err := LoadFile(l.path)
		if err != nil {
			if l.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", l.name, err)
		}
		if err := ApplyMapToConfig(cfg, m); err != nil {
			return nil, fmt.Errorf("%s %s: %w", l.name, l.path, err)
		}
	}

	if len(cliOverrides) > 0 {
		if err := ApplyMapToConfig(cfg, cliOverrides); err != nil {
			return nil, fmt.Errorf("flags: %w", err)
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = APIKeyFromEnv()
	}

	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "MAX_RETRIES").
// Unknown keys are silently ignored.
func ApplyMapToConfig(cfg *Config, m map[string]string) error {
	var errs []error
	for key, value := range m {
		var err error
		switch key {
		case "GEMINI_API_KEY":
			cfg.APIKey = value
		case "MODELS":
			cfg.Models = ParseList(value)
		case "MAX_RETRIES":
			cfg.MaxRetries, err = strconv.Atoi(value)
		case "INITIAL_DELAY_MS":
			cfg.InitialDelay, err = parseMillis(value)
		case "MAX_DELAY_MS":
			cfg.MaxDelay, err = parseMillis(value)
		case "ATTEMPT_TIMEOUT":
			cfg.AttemptTimeout, err = parseSeconds(value)
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		case "METRICS":
			cfg.MetricsFile = value
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, value, err))
		}
	}
	return errors.Join(errs...)
}

// ParseList splits a comma-separated list, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseMillis accepts a bare integer as milliseconds or a Go duration
// string such as "1.5s".
func parseMillis(s string) (time.Duration, error) {
	return parseDuration(s, time.Millisecond)
}

// parseSeconds accepts a bare integer as seconds or a Go duration string.
func parseSeconds(s string) (time.Duration, error) {
	return parseDuration(s, time.Second)
}

func parseDuration(s string, unit time.Duration) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * unit, nil
	}
	return time.ParseDuration(s)
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// LoadDotEnv loads .env style files into the process environment. Variables
// already set are left untouched. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env", ".env.local"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to
// NEXT_PUBLIC_GEMINI_API_KEY.
func APIKeyFromEnv() string {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(EnvPublicAPIKey))
}

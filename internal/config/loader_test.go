package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/tools-hub/internal/config"
)

// writeFile is a helper that creates a file with the given content inside dir
// and returns its absolute path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	err := os.WriteFile(p, []byte(content), 0644)
	require.NoError(t, err)
	return p
}

// clearKeyEnv keeps the environment's API key out of precedence tests.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvPublicAPIKey, "")
}

// ---------------------------------------------------------------------------
// LoadFile
// ---------------------------------------------------------------------------

func TestLoadFileBasicKeyValue(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg", "MODELS=gemini-2.5-flash,gemini-2.0-flash-001\nMAX_RETRIES=3\n")

	m, err := config.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash,gemini-2.0-flash-001", m["MODELS"])
	assert.Equal(t, "3", m["MAX_RETRIES"])
}

func TestLoadFileSkipsCommentsBlankLinesAndUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg", "# comment\n\nUNKNOWN=1\nnot a pair\n  VERBOSE = true  \n")

	m, err := config.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"VERBOSE": "true"}, m)
}

func TestLoadFileStripsQuotes(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg", "GEMINI_API_KEY=\"abc=123\"\nMETRICS='/tmp/m.prom'\nMODELS=\"\n")

	m, err := config.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "abc=123", m["GEMINI_API_KEY"])
	assert.Equal(t, "/tmp/m.prom", m["METRICS"])
	assert.Equal(t, "\"", m["MODELS"])
}

func TestLoadFileReturnsErrorForMissingFile(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ---------------------------------------------------------------------------
// LoadWithPrecedence
// ---------------------------------------------------------------------------

func TestLoadWithPrecedenceDefaultsOnly(t *testing.T) {
	clearKeyEnv(t)

	cfg, err := config.LoadWithPrecedence("", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaultConfig(), cfg)
}

func TestLoadWithPrecedenceFullChain(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()
	global := writeFile(t, dir, "global", "MAX_RETRIES=5\nINITIAL_DELAY_MS=200\nMODELS=a\nGEMINI_API_KEY=global-key\n")
	project := writeFile(t, dir, "project", "MAX_RETRIES=4\nMODELS=b, c\n")
	explicit := writeFile(t, dir, "explicit", "MAX_RETRIES=3\nATTEMPT_TIMEOUT=10\n")

	cfg, err := config.LoadWithPrecedence(global, project, explicit, map[string]string{
		"MAX_DELAY_MS": "1500",
		"VERBOSE":      "yes",
	})
	require.NoError(t, err)

	assert.Equal(t, "global-key", cfg.APIKey)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.MaxDelay)
	assert.Equal(t, 10*time.Second, cfg.AttemptTimeout)
	assert.Equal(t, []string{"b", "c"}, cfg.Models)
	assert.True(t, cfg.Verbose)
}

func TestLoadWithPrecedenceCLIOverridesAll(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()
	global := writeFile(t, dir, "global", "MAX_RETRIES=5\n")
	explicit := writeFile(t, dir, "explicit", "MAX_RETRIES=4\n")

	cfg, err := config.LoadWithPrecedence(global, "", explicit, map[string]string{"MAX_RETRIES": "0"})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadWithPrecedenceMissingOptionalFilesAreNotErrors(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()

	cfg, err := config.LoadWithPrecedence(filepath.Join(dir, "g"), filepath.Join(dir, "p"), "", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestLoadWithPrecedenceMissingExplicitIsError(t *testing.T) {
	_, err := config.LoadWithPrecedence("", "", filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explicit config")
}

func TestLoadWithPrecedenceUnreadableProjectIsError(t *testing.T) {
	// A directory cannot be scanned as a config file.
	_, err := config.LoadWithPrecedence("", t.TempDir(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project config")
}

func TestLoadWithPrecedenceInvalidNumberIsError(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg", "MAX_RETRIES=lots\n")

	_, err := config.LoadWithPrecedence("", p, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `MAX_RETRIES="lots"`)
}

func TestLoadWithPrecedenceAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvPublicAPIKey, "public-key")

	cfg, err := config.LoadWithPrecedence("", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "public-key", cfg.APIKey)

	t.Setenv(config.EnvAPIKey, "private-key")
	cfg, err = config.LoadWithPrecedence("", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "private-key", cfg.APIKey)

	cfg, err = config.LoadWithPrecedence("", "", "", map[string]string{"GEMINI_API_KEY": "flag-key"})
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.APIKey)
}

// ---------------------------------------------------------------------------
// ApplyMapToConfig / helpers
// ---------------------------------------------------------------------------

func TestApplyMapToConfigBooleanVariations(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			require.NoError(t, config.ApplyMapToConfig(cfg, map[string]string{"VERBOSE": tt.value}))
			assert.Equal(t, tt.expected, cfg.Verbose)
		})
	}
}

func TestApplyMapToConfigIgnoresUnknownKeys(t *testing.T) {
	cfg := config.NewDefaultConfig()
	require.NoError(t, config.ApplyMapToConfig(cfg, map[string]string{"AI_CLI": "claude"}))
	assert.Equal(t, config.NewDefaultConfig(), cfg)
}

func TestApplyMapToConfigCollectsAllErrors(t *testing.T) {
	cfg := config.NewDefaultConfig()
	err := config.ApplyMapToConfig(cfg, map[string]string{
		"INITIAL_DELAY_MS": "soon",
		"ATTEMPT_TIMEOUT":  "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INITIAL_DELAY_MS")
	assert.Contains(t, err.Error(), "ATTEMPT_TIMEOUT")
}

func TestApplyMapToConfigDurationForms(t *testing.T) {
	cfg := config.NewDefaultConfig()
	require.NoError(t, config.ApplyMapToConfig(cfg, map[string]string{
		"INITIAL_DELAY_MS": "1.5s",
		"MAX_DELAY_MS":     "2500",
		"ATTEMPT_TIMEOUT":  "500ms",
	}))
	assert.Equal(t, 1500*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 2500*time.Millisecond, cfg.MaxDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.AttemptTimeout)
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, config.ParseList(" a , ,b,"))
	assert.Nil(t, config.ParseList(""))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, ".env", "TOOLS_HUB_TEST_A=from-file\nTOOLS_HUB_TEST_B=from-file\n")
	t.Setenv("TOOLS_HUB_TEST_A", "")
	os.Unsetenv("TOOLS_HUB_TEST_A")
	t.Setenv("TOOLS_HUB_TEST_B", "preset")

	require.NoError(t, config.LoadDotEnv(p, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "from-file", os.Getenv("TOOLS_HUB_TEST_A"))
	assert.Equal(t, "preset", os.Getenv("TOOLS_HUB_TEST_B"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"AI_SOLUTION_PROVIDER", "AI_SOLUTION_API_KEY", "AI_SOLUTION_MODEL",
		"AI_SOLUTION_TIMEOUT", "AI_SOLUTION_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_FileWithDefaults(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, "api_key: file-key\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, cfg.Provider)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
}

func TestLoad_FileOverrides(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, `provider: openai
api_key: file-key
model: gpt-4o-mini
timeout: 5s
max_retries: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.MaxRetries)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, "api_key: file-key\n")
	t.Setenv("AI_SOLUTION_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoad_ProviderKeyFallback(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, "provider: openai\n")
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", cfg.APIKey)
}

func TestLoad_MissingKeyFails(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, "provider: claude\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key configured")
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearProviderEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	var nilCfg *Config
	require.ErrorIs(t, nilCfg.Validate(), ErrNotInitialized)

	cfg := &Config{Provider: "claude", APIKey: "k", MaxRetries: -1}
	require.Error(t, cfg.Validate())

	cfg.MaxRetries = 0
	require.NoError(t, cfg.Validate())
}

func TestEffectiveTimeout(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, DefaultTimeout, nilCfg.EffectiveTimeout())
	assert.Equal(t, DefaultTimeout, (&Config{}).EffectiveTimeout())
	assert.Equal(t, 3*time.Second, (&Config{Timeout: 3 * time.Second}).EffectiveTimeout())
}

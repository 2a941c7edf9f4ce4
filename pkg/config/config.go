package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrNotInitialized is reported when analysis is requested before any
// configuration has been supplied.
var ErrNotInitialized = errors.New("ai-error-solution: Package not initialized. Call Init() with a valid configuration first")

const (
	DefaultProvider   = "claude"
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 2
)

// Config is the immutable configuration value handed to the orchestrator.
// Build it once at startup, via Load or a struct literal, and pass it along.
type Config struct {
	Provider   string        `mapstructure:"provider" yaml:"provider"`
	APIKey     string        `mapstructure:"api_key" yaml:"api_key"`
	Model      string        `mapstructure:"model" yaml:"model"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries"`
}

// Load resolves configuration from defaults, an optional YAML file and the
// environment (AI_SOLUTION_* variables, plus the per-provider API key
// variables as a fallback). When path is empty, ~/.ai-error-solution.yaml and
// ./.ai-error-solution.yaml are tried and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AI_SOLUTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".ai-error-solution")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		// The implicit config file is optional.
		_ = v.ReadInConfig()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = apiKeyFromEnv(cfg.Provider)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("max_retries", DefaultMaxRetries)
	// Registered so AutomaticEnv can surface them through Unmarshal.
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
}

func apiKeyFromEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("ANTHROPIC_API_KEY")
	}
}

// Validate reports whether the configuration is usable for analysis.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNotInitialized
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("ai-error-solution: no API key configured for provider %q", c.Provider)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("ai-error-solution: max_retries must be non-negative, got %d", c.MaxRetries)
	}
	return nil
}

// EffectiveTimeout returns the configured timeout, or the default when unset.
func (c *Config) EffectiveTimeout() time.Duration {
	if c == nil || c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

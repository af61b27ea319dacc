package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.2
)

// GenerationConfig holds the process-wide generation parameters applied to
// every relayed prompt. Callers never override them.
//
// Models is keyed by provider name. A provider without an entry uses its
// own default model.
type GenerationConfig struct {
	Models      map[string]string `yaml:"models"`
	MaxTokens   int               `yaml:"max_tokens"`
	Temperature *float64          `yaml:"temperature"`
}

type RelayConfig struct {
	Generation GenerationConfig `yaml:"generation"`
}

func DefaultGenerationConfig() GenerationConfig {
	temperature := DefaultTemperature
	return GenerationConfig{
		MaxTokens:   DefaultMaxTokens,
		Temperature: &temperature,
	}
}

// LoadGenerationConfig reads RELAY_CONFIG_PATH (default configs/relay.yaml).
// A missing file is not an error: the built-in defaults are used.
func LoadGenerationConfig() (GenerationConfig, error) {
	path := os.Getenv("RELAY_CONFIG_PATH")
	if path == "" {
		path = "configs/relay.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultGenerationConfig(), nil
		}
		return GenerationConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RelayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GenerationConfig{}, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg.Generation)

	if err := cfg.Generation.Validate(); err != nil {
		return GenerationConfig{}, err
	}

	return cfg.Generation, nil
}

func applyDefaults(cfg *GenerationConfig) {
	defaults := DefaultGenerationConfig()

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}
	if cfg.Temperature == nil {
		cfg.Temperature = defaults.Temperature
	}
}

func (g GenerationConfig) Validate() error {
	if g.MaxTokens < 0 {
		return fmt.Errorf("negative max_tokens: %d", g.MaxTokens)
	}
	if g.Temperature != nil && (*g.Temperature < 0.0 || *g.Temperature > 1.0) {
		return fmt.Errorf("invalid temperature %f: must be within [0, 1]", *g.Temperature)
	}
	return nil
}

// Model returns the model configured for provider, or "" when the provider
// default applies.
func (g GenerationConfig) Model(provider string) string {
	return g.Models[provider]
}

// TemperatureValue returns the configured temperature or the default.
func (g GenerationConfig) TemperatureValue() float64 {
	if g.Temperature == nil {
		return DefaultTemperature
	}
	return *g.Temperature
}

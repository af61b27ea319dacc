package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "relay.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadGenerationConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("RELAY_CONFIG_PATH", "/nonexistent/path/relay.yaml")

	cfg, err := LoadGenerationConfig()
	if err != nil {
		t.Fatalf("LoadGenerationConfig() failed: %v", err)
	}

	if model := cfg.Model("anthropic"); model != "" {
		t.Errorf("Expected no model override, got %s", model)
	}
	if cfg.MaxTokens != 1000 {
		t.Errorf("Expected max_tokens=1000, got %d", cfg.MaxTokens)
	}
	if cfg.TemperatureValue() != 0.2 {
		t.Errorf("Expected temperature=0.2, got %f", cfg.TemperatureValue())
	}
}

func TestLoadGenerationConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `generation:
  models:
    bedrock: anthropic.claude-3-haiku-20240307-v1:0
  temperature: 0.0
`)
	t.Setenv("RELAY_CONFIG_PATH", path)

	cfg, err := LoadGenerationConfig()
	if err != nil {
		t.Fatalf("LoadGenerationConfig() failed: %v", err)
	}

	if model := cfg.Model("bedrock"); model != "anthropic.claude-3-haiku-20240307-v1:0" {
		t.Errorf("Unexpected bedrock model: %s", model)
	}
	if model := cfg.Model("openai"); model != "" {
		t.Errorf("Expected no openai override, got %s", model)
	}
	// explicit zero must survive defaults
	if cfg.TemperatureValue() != 0.0 {
		t.Errorf("Expected temperature=0.0, got %f", cfg.TemperatureValue())
	}
	if cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("Expected default max_tokens, got %d", cfg.MaxTokens)
	}
}

func TestLoadGenerationConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `generation:
  models: [unterminated
`)
	t.Setenv("RELAY_CONFIG_PATH", path)

	_, err := LoadGenerationConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	negative := -0.1
	tooHigh := 1.5
	ok := 0.7

	tests := []struct {
		name      string
		cfg       GenerationConfig
		expectErr string
	}{
		{"valid", GenerationConfig{MaxTokens: 10, Temperature: &ok}, ""},
		{"negative max tokens", GenerationConfig{MaxTokens: -1}, "negative max_tokens"},
		{"negative temperature", GenerationConfig{MaxTokens: 10, Temperature: &negative}, "invalid temperature"},
		{"temperature too high", GenerationConfig{MaxTokens: 10, Temperature: &tooHigh}, "invalid temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
				t.Errorf("Expected '%s' error, got: %v", tt.expectErr, err)
			}
		})
	}
}

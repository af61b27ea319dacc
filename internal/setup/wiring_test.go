package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm/claude"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm/gpt"
	"github.com/rs/zerolog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"API_KEY", "LLM_PROVIDER", "RELAY_API_PORT", "LOG_LEVEL", "HOSTNAME"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Provider != ProviderAnthropic {
		t.Errorf("Expected default provider %s, got %s", ProviderAnthropic, cfg.Provider)
	}
	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if !strings.HasPrefix(cfg.ConsumerName, "relay-") || len(cfg.ConsumerName) != len("relay-")+8 {
		t.Errorf("Expected generated consumer name, got %q", cfg.ConsumerName)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("API_KEY", "sk-ant-test")
	t.Setenv("LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("RELAY_API_PORT", "18080")

	cfg := LoadConfig()

	if cfg.APIKey != "sk-ant-test" {
		t.Errorf("Expected API key from env, got %q", cfg.APIKey)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Expected provider openai, got %s", cfg.Provider)
	}
	if cfg.Port != "18080" {
		t.Errorf("Expected port 18080, got %s", cfg.Port)
	}
}

func TestWire(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectModel string
		expectErr   string
	}{
		{
			name:        "anthropic with key",
			cfg:         Config{Provider: ProviderAnthropic, APIKey: "sk-ant-test"},
			expectModel: claude.DefaultModel,
		},
		{
			name:      "anthropic without key",
			cfg:       Config{Provider: ProviderAnthropic},
			expectErr: "API key is required",
		},
		{
			name:        "openai with key",
			cfg:         Config{Provider: ProviderOpenAI, OpenAIKey: "sk-test"},
			expectModel: gpt.DefaultModel,
		},
		{
			name:        "bedrock",
			cfg:         Config{Provider: ProviderBedrock, AWSRegion: "us-east-1"},
			expectModel: bedrock.DefaultModel,
		},
		{
			name:      "unknown provider",
			cfg:       Config{Provider: "gemini"},
			expectErr: "unsupported LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RELAY_CONFIG_PATH", "/nonexistent/relay.yaml")
			t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
			t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
			t.Setenv("AWS_PROFILE", "")
			logger := zerolog.Nop()

			deps, err := Wire(context.Background(), &tt.cfg, &logger)
			if tt.expectErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
					t.Fatalf("Expected '%s' error, got %v", tt.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Wire failed: %v", err)
			}
			if deps.Relay == nil {
				t.Error("Expected a relay")
			}
			if deps.Model != tt.expectModel {
				t.Errorf("Expected model %s, got %s", tt.expectModel, deps.Model)
			}
			if deps.Generation.MaxTokens != 1000 {
				t.Errorf("Expected max_tokens=1000, got %d", deps.Generation.MaxTokens)
			}
		})
	}
}

func TestWire_ModelPerProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.yaml")
	content := `generation:
  models:
    anthropic: claude-3-haiku-20240307
    openai: gpt-4.1-mini
    bedrock: claude-3-haiku-20240307
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("RELAY_CONFIG_PATH", path)
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
	t.Setenv("AWS_PROFILE", "")
	logger := zerolog.Nop()

	deps, err := Wire(context.Background(), &Config{Provider: ProviderAnthropic, APIKey: "sk-ant-test"}, &logger)
	if err != nil {
		t.Fatalf("Wire failed: %v", err)
	}
	if deps.Model != "claude-3-haiku-20240307" {
		t.Errorf("Expected anthropic model from config, got %s", deps.Model)
	}

	deps, err = Wire(context.Background(), &Config{Provider: ProviderOpenAI, OpenAIKey: "sk-test"}, &logger)
	if err != nil {
		t.Fatalf("Wire failed: %v", err)
	}
	if deps.Model != "gpt-4.1-mini" {
		t.Errorf("Expected openai model from config, got %s", deps.Model)
	}

	// An Anthropic API model name is not a Bedrock model id.
	_, err = Wire(context.Background(), &Config{Provider: ProviderBedrock, AWSRegion: "us-east-1"}, &logger)
	if err == nil || !strings.Contains(err.Error(), "not an Anthropic model") {
		t.Errorf("Expected model mismatch error, got %v", err)
	}
}

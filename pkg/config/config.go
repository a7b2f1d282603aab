package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for datalens-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys) must only come from environment variables.
type Config struct {
	Env     string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version string `yaml:"-"` // Set at load time, not from config

	// TemplatesPath points at an optional YAML file overriding the built-in
	// prompt templates. A missing file is tolerated.
	TemplatesPath string `yaml:"templates_path" env:"TEMPLATES_PATH" env-default:""`

	// Assistant configures where formatted data context is sent.
	Assistant AssistantConfig `yaml:"assistant"`

	// AI configures the direct API provider used when the assistant mode is
	// "api" rather than an external CLI.
	AI AIConfig `yaml:"ai"`
}

// AssistantConfig selects and tunes the downstream assistant collaborator.
type AssistantConfig struct {
	// Mode is "cli" (pipe prompts to an external assistant CLI) or "api"
	// (send prompts through the configured AI provider).
	Mode string `yaml:"mode" env:"ASSISTANT_MODE" env-default:"cli"`

	// Command is the external assistant CLI executable for mode "cli".
	Command string `yaml:"command" env:"ASSISTANT_COMMAND" env-default:"claude"`

	// TimeoutSeconds bounds a single assistant exchange.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"ASSISTANT_TIMEOUT_SECONDS" env-default:"120"`
}

// AIConfig holds direct API provider settings.
type AIConfig struct {
	// Provider is "openai" (any OpenAI-compatible endpoint) or "anthropic".
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`
	BaseURL  string `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model    string `yaml:"model" env:"AI_MODEL" env-default:""`
	APIKey   string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
}

// Load reads configuration from config.yaml with environment variable
// overrides. A missing config.yaml is tolerated; environment variables and
// defaults then apply alone. The version parameter is injected at build time
// and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Assistant.Mode {
	case "cli", "api":
	default:
		return fmt.Errorf("assistant mode must be \"cli\" or \"api\", got %q", c.Assistant.Mode)
	}

	switch c.AI.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("ai provider must be \"openai\" or \"anthropic\", got %q", c.AI.Provider)
	}

	if c.Assistant.Mode == "cli" && c.Assistant.Command == "" {
		return fmt.Errorf("assistant command is required in cli mode")
	}
	if c.Assistant.TimeoutSeconds <= 0 {
		return fmt.Errorf("assistant timeout must be positive")
	}

	return nil
}

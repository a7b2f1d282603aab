package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "cli", cfg.Assistant.Mode)
	assert.Equal(t, "claude", cfg.Assistant.Command)
	assert.Equal(t, 120, cfg.Assistant.TimeoutSeconds)
	assert.Equal(t, "openai", cfg.AI.Provider)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ASSISTANT_MODE", "api")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_MODEL", "claude-sonnet-4-5")
	t.Setenv("AI_API_KEY", "secret-from-env")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Assistant.Mode)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.AI.Model)
	assert.Equal(t, "secret-from-env", cfg.AI.APIKey)
}

func TestLoad_RejectsBadAssistantMode(t *testing.T) {
	t.Setenv("ASSISTANT_MODE", "carrier-pigeon")

	_, err := Load("dev")
	assert.ErrorContains(t, err, "assistant mode")
}

func TestLoad_RejectsBadProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "abacus")

	_, err := Load("dev")
	assert.ErrorContains(t, err, "ai provider")
}

func TestValidate_RejectsMissingCommandInCLIMode(t *testing.T) {
	cfg := &Config{
		Assistant: AssistantConfig{Mode: "cli", Command: "", TimeoutSeconds: 60},
		AI:        AIConfig{Provider: "openai"},
	}

	assert.ErrorContains(t, cfg.validate(), "assistant command")
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("ASSISTANT_TIMEOUT_SECONDS", "0")

	_, err := Load("dev")
	assert.ErrorContains(t, err, "timeout")
}

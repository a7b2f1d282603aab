package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/config"
)

func TestNewFromConfig_OpenAI(t *testing.T) {
	client, err := NewFromConfig(&config.AIConfig{
		Provider: "openai",
		BaseURL:  "https://api.openai.com/v1",
		Model:    "gpt-4o",
		APIKey:   "test-key",
	}, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", client.GetModel())
}

func TestNewFromConfig_Anthropic(t *testing.T) {
	client, err := NewFromConfig(&config.AIConfig{
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		APIKey:   "test-key",
	}, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", client.GetModel())
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	_, err := NewFromConfig(&config.AIConfig{Provider: "smoke-signals"}, zap.NewNop())
	assert.ErrorContains(t, err, "unknown ai provider")
}

func TestNewFromConfig_AnthropicRequiresKey(t *testing.T) {
	_, err := NewFromConfig(&config.AIConfig{
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
	}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewClient_RequiresEndpointAndModel(t *testing.T) {
	_, err := NewClient(&Config{Model: "m"}, zap.NewNop())
	assert.ErrorContains(t, err, "endpoint")

	_, err = NewClient(&Config{Endpoint: "http://localhost"}, zap.NewNop())
	assert.ErrorContains(t, err, "model")
}

func TestMockClient(t *testing.T) {
	mock := NewMockClient("canned")

	reply, err := mock.GenerateResponse(context.Background(), "p1", "sys")
	require.NoError(t, err)
	assert.Equal(t, "canned", reply)

	_, err = mock.GenerateResponse(context.Background(), "p2", "sys")
	require.NoError(t, err)

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, []string{"p1", "p2"}, mock.Prompts)
}

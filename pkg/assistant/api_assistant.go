package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/llm"
	"github.com/datalens-ai/datalens-engine/pkg/logging"
	"github.com/datalens-ai/datalens-engine/pkg/retry"
)

// APIAssistant sends prompts through a direct LLM API provider instead of an
// external CLI process.
type APIAssistant struct {
	client  llm.LLMClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewAPIAssistant wraps an LLM client as an assistant.
func NewAPIAssistant(client llm.LLMClient, timeout time.Duration, logger *zap.Logger) *APIAssistant {
	return &APIAssistant{
		client:  client,
		timeout: timeout,
		logger:  logger.Named("assistant-api"),
	}
}

// Send runs one assistant exchange through the configured provider.
func (a *APIAssistant) Send(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	requestID := uuid.New()

	a.logger.Info("Sending prompt to assistant API",
		zap.String("request_id", requestID.String()),
		zap.String("model", a.client.GetModel()),
		zap.Int("prompt_len", len(prompt)))
	a.logger.Debug("Prompt preview",
		zap.String("request_id", requestID.String()),
		zap.String("prompt", logging.SanitizePrompt(prompt)))

	reply, err := retry.DoIfRetryable(ctx, retry.DefaultConfig(), func() (string, error) {
		return a.client.GenerateResponse(ctx, prompt, systemMessage)
	})
	if err != nil {
		a.logger.Error("Assistant API failed",
			zap.String("request_id", requestID.String()),
			zap.String("error", logging.SanitizeError(err)))
		return "", fmt.Errorf("assistant api: %w", err)
	}

	return reply, nil
}

var _ Assistant = (*APIAssistant)(nil)

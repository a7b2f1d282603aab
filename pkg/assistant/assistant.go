// Package assistant forwards formatted data context prompts to the
// configured AI assistant, either an external CLI process or a direct API
// provider. The data context engine itself never talks to an assistant; this
// package is the collaborator that consumes its output.
package assistant

import (
	"context"
	"time"

	"github.com/datalens-ai/datalens-engine/pkg/config"
	"github.com/datalens-ai/datalens-engine/pkg/llm"

	"go.uber.org/zap"
)

// Assistant accepts a prompt and returns the assistant's reply.
type Assistant interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// systemMessage frames every exchange sent through a direct API provider.
const systemMessage = "You are a data analysis assistant embedded in an IDE. Answer with concrete, runnable suggestions grounded in the data context provided."

// NewFromConfig creates the assistant selected by configuration.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (Assistant, error) {
	timeout := time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second

	if cfg.Assistant.Mode == "api" {
		client, err := llm.NewFromConfig(&cfg.AI, logger)
		if err != nil {
			return nil, err
		}
		return NewAPIAssistant(client, timeout, logger), nil
	}

	return NewCLIRunner(cfg.Assistant.Command, timeout, logger), nil
}

package assistant

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/logging"
)

// CLIRunner pipes prompts to an external assistant CLI over stdin and
// captures its stdout as the reply. Process lifecycle is bounded per
// exchange; no long-lived session is kept.
type CLIRunner struct {
	command string
	args    []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewCLIRunner creates a runner for the given assistant executable.
func NewCLIRunner(command string, timeout time.Duration, logger *zap.Logger, args ...string) *CLIRunner {
	return &CLIRunner{
		command: command,
		args:    args,
		timeout: timeout,
		logger:  logger.Named("assistant-cli"),
	}
}

// Send runs one assistant exchange. The prompt goes to the process's stdin;
// stdout is the reply. Stderr is captured for diagnostics only.
func (r *CLIRunner) Send(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	requestID := uuid.New()

	r.logger.Info("Sending prompt to assistant CLI",
		zap.String("request_id", requestID.String()),
		zap.String("command", logging.SanitizeCommandLine(r.command)),
		zap.Int("prompt_len", len(prompt)))
	r.logger.Debug("Prompt preview",
		zap.String("request_id", requestID.String()),
		zap.String("prompt", logging.SanitizePrompt(prompt)))

	cmd := exec.CommandContext(ctx, r.command, r.args...)
	cmd.Stdin = bytes.NewReader([]byte(prompt))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		r.logger.Error("Assistant CLI failed",
			zap.String("request_id", requestID.String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("stderr", logging.TruncateString(stderr.String(), 500)),
			zap.String("error", logging.SanitizeError(err)))
		return "", fmt.Errorf("assistant command %q: %w", r.command, err)
	}

	r.logger.Info("Assistant CLI completed",
		zap.String("request_id", requestID.String()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("reply_len", stdout.Len()))

	return stdout.String(), nil
}

var _ Assistant = (*CLIRunner)(nil)

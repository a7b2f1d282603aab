// Package tools provides MCP tool implementations for datalens-engine.
package tools

import (
	"strings"

	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/assistant"
	"github.com/datalens-ai/datalens-engine/pkg/dataset"
	"github.com/datalens-ai/datalens-engine/pkg/prompts"
)

// Deps carries the collaborators every tool needs. Assistant may be nil when
// no downstream assistant is configured; tools that would forward a prompt
// then return the prompt itself.
type Deps struct {
	Engine    dataset.Engine
	Templates prompts.TemplateSet
	Assistant assistant.Assistant
	Logger    *zap.Logger
}

// trimString removes leading and trailing whitespace from a string.
// This is a common helper used across MCP tool parameter validation.
func trimString(s string) string {
	return strings.TrimSpace(s)
}

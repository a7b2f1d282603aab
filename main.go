package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/assistant"
	"github.com/datalens-ai/datalens-engine/pkg/config"
	"github.com/datalens-ai/datalens-engine/pkg/dataset"
	"github.com/datalens-ai/datalens-engine/pkg/logging"
	"github.com/datalens-ai/datalens-engine/pkg/mcp"
	"github.com/datalens-ai/datalens-engine/pkg/mcp/tools"
	"github.com/datalens-ai/datalens-engine/pkg/prompts"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	templates, err := prompts.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load prompt templates: %v", err)
	}

	// The assistant is optional: without one, prompt tools return the
	// built prompt instead of a reply.
	asst, err := assistant.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Warn("Assistant unavailable, prompt tools will return prompts only",
			zap.String("error", logging.SanitizeError(err)))
		asst = nil
	}

	deps := &tools.Deps{
		Engine:    dataset.NewEngine(logger),
		Templates: templates,
		Assistant: asst,
		Logger:    logger,
	}

	srv := mcp.NewServer("datalens-engine", cfg.Version, logger)
	tools.RegisterHealthTool(srv.MCP(), cfg.Version)
	tools.RegisterDataContextTools(srv.MCP(), deps)
	tools.RegisterPromptTools(srv.MCP(), deps)

	log.Printf("Starting datalens-engine on stdio (version: %s)", cfg.Version)
	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/dataset"
	"github.com/datalens-ai/datalens-engine/pkg/prompts"
)

// RegisterDataContextTools adds the data context tools to the MCP server:
// get_data_context, is_data_file and clear_data_cache. File reading happens
// here, at the collaborator boundary; the engine itself only ever sees
// already-read text.
func RegisterDataContextTools(s *server.MCPServer, deps *Deps) {
	registerGetDataContext(s, deps)
	registerIsDataFile(s, deps)
	registerClearDataCache(s, deps)
}

func registerGetDataContext(s *server.MCPServer, deps *Deps) {
	tool := mcp.NewTool(
		"get_data_context",
		mcp.WithDescription("Analyzes a data file (CSV, TSV or JSON) and returns a formatted context block with column types, missing-value statistics and a preview"),
		mcp.WithString(
			"path",
			mcp.Required(),
			mcp.Description("Path to the data file to analyze"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return nil, err
		}
		path = trimString(path)
		if path == "" {
			return NewErrorResult("invalid_parameters", "parameter 'path' cannot be empty"), nil
		}

		if !dataset.IsRecognizedDataFile(path) {
			return NewErrorResult("unsupported_format",
				fmt.Sprintf("%q is not a recognized data file; supported extensions are .csv, .tsv and .json", path)), nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return NewErrorResult("file_not_found", fmt.Sprintf("no file at %q", path)), nil
			}
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}

		summary, err := deps.Engine.Analyze(path, string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %q: %w", path, err)
		}

		deps.Logger.Debug("Built data context",
			zap.String("path", path),
			zap.String("kind", string(summary.Kind)))

		return mcp.NewToolResultText(prompts.FormatForPrompt(summary)), nil
	})
}

type isDataFileResult struct {
	Recognized bool   `json:"recognized"`
	Format     string `json:"format"`
}

func registerIsDataFile(s *server.MCPServer, deps *Deps) {
	tool := mcp.NewTool(
		"is_data_file",
		mcp.WithDescription("Checks whether a file name is a recognized data file the engine can analyze"),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("File name or path to check"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return nil, err
		}
		name = trimString(name)

		result, err := json.Marshal(isDataFileResult{
			Recognized: dataset.IsRecognizedDataFile(name),
			Format:     string(dataset.ClassifyFileName(name)),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return mcp.NewToolResultText(string(result)), nil
	})
}

func registerClearDataCache(s *server.MCPServer, deps *Deps) {
	tool := mcp.NewTool(
		"clear_data_cache",
		mcp.WithDescription("Clears all cached data file analyses. Use after a data file changes on disk, since cached summaries are never invalidated automatically"),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps.Engine.ClearCache()
		return mcp.NewToolResultText(`{"cleared":true}`), nil
	})
}

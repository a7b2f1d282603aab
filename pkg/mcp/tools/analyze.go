package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/datalens-ai/datalens-engine/pkg/dataset"
	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// RegisterPromptTools adds the prompt-building tools to the MCP server:
// suggest_statistical_tests and improve_plot. Each builds a task prompt
// around the data context. When an assistant is configured and the caller
// sets send=true, the prompt is forwarded and the assistant's reply returned;
// otherwise the built prompt itself is the result.
func RegisterPromptTools(s *server.MCPServer, deps *Deps) {
	registerSuggestStatisticalTests(s, deps)
	registerImprovePlot(s, deps)
}

func registerSuggestStatisticalTests(s *server.MCPServer, deps *Deps) {
	tool := mcp.NewTool(
		"suggest_statistical_tests",
		mcp.WithDescription("Builds a prompt asking for appropriate statistical tests for a data file, optionally forwarding it to the configured assistant"),
		mcp.WithString(
			"path",
			mcp.Required(),
			mcp.Description("Path to the data file to analyze"),
		),
		mcp.WithBoolean(
			"send",
			mcp.Description("Forward the prompt to the configured assistant and return its reply instead of the prompt"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, errResult, err := analyzePath(deps, req)
		if errResult != nil || err != nil {
			return errResult, err
		}

		prompt := deps.Templates.BuildStatisticalTestPrompt(summary)
		return deliver(ctx, deps, req, prompt)
	})
}

func registerImprovePlot(s *server.MCPServer, deps *Deps) {
	tool := mcp.NewTool(
		"improve_plot",
		mcp.WithDescription("Builds a prompt asking for improvements to selected plotting code against a data file, optionally forwarding it to the configured assistant"),
		mcp.WithString(
			"path",
			mcp.Required(),
			mcp.Description("Path to the data file the plot draws from"),
		),
		mcp.WithString(
			"code",
			mcp.Description("The selected plotting code to improve"),
		),
		mcp.WithBoolean(
			"send",
			mcp.Description("Forward the prompt to the configured assistant and return its reply instead of the prompt"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, errResult, err := analyzePath(deps, req)
		if errResult != nil || err != nil {
			return errResult, err
		}

		code := req.GetString("code", "")
		prompt := deps.Templates.BuildVisualizationPrompt(summary, code)
		return deliver(ctx, deps, req, prompt)
	})
}

// analyzePath reads and analyzes the file named by the request's required
// "path" parameter. Exactly one of the three return values is meaningful.
func analyzePath(deps *Deps, req mcp.CallToolRequest) (*models.TableSummary, *mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return nil, nil, err
	}
	path = trimString(path)
	if path == "" {
		return nil, NewErrorResult("invalid_parameters", "parameter 'path' cannot be empty"), nil
	}

	if !dataset.IsRecognizedDataFile(path) {
		return nil, NewErrorResult("unsupported_format",
			fmt.Sprintf("%q is not a recognized data file; supported extensions are .csv, .tsv and .json", path)), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewErrorResult("file_not_found", fmt.Sprintf("no file at %q", path)), nil
		}
		return nil, nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	summary, err := deps.Engine.Analyze(path, string(content))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to analyze %q: %w", path, err)
	}
	return summary, nil, nil
}

// deliver returns the prompt, or the assistant's reply when the caller asked
// for forwarding and an assistant is configured.
func deliver(ctx context.Context, deps *Deps, req mcp.CallToolRequest, prompt string) (*mcp.CallToolResult, error) {
	if !req.GetBool("send", false) {
		return mcp.NewToolResultText(prompt), nil
	}
	if deps.Assistant == nil {
		return NewErrorResult("no_assistant", "no assistant is configured; call again without send=true to get the prompt"), nil
	}

	reply, err := deps.Assistant.Send(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant exchange failed: %w", err)
	}
	return mcp.NewToolResultText(reply), nil
}

package mcp

// Implementation Plan:
// 1. AddDocumentationTools - composable tool registration function
// 2. createDocumentationHandler / createSymbolsHandler - handler factories that capture the documenter
// 3. Parse arguments from the MCP request
// 4. Resolve documentation by position or by symbol name
// 5. Return as JSON text (mcp-go convention)

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/cortex-hover/internal/hover"
)

// Documenter resolves documentation for declarations in source files.
type Documenter interface {
	Hover(ctx context.Context, path string, line, column int) (*hover.Result, error)
	Lookup(ctx context.Context, path, name string) ([]hover.Result, error)
	List(ctx context.Context, path string) ([]hover.Result, error)
}

// DocumentationResponse is the JSON body returned by the documentation tools.
type DocumentationResponse struct {
	Results []hover.Result `json:"results"`
	Total   int            `json:"total"`
}

// AddDocumentationTools registers cortex_documentation and
// cortex_documented_symbols with an MCP server.
func AddDocumentationTools(s *server.MCPServer, documenter Documenter, projectRoot string) {
	documentationTool := mcp.NewTool(
		"cortex_documentation",
		mcp.WithDescription("Get the documentation comment of a declaration in a source file, the way an editor hover shows it. Address the declaration by position (line + column) or by symbol name."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file path, absolute or relative to the project root")),
		mcp.WithNumber("line",
			mcp.Description("1-based line of the position to hover")),
		mcp.WithNumber("column",
			mcp.Description("1-based column of the position to hover")),
		mcp.WithString("symbol",
			mcp.Description("Declaration name to look up instead of a position")),
	)
	s.AddTool(documentationTool, createDocumentationHandler(documenter, projectRoot))

	symbolsTool := mcp.NewTool(
		"cortex_documented_symbols",
		mcp.WithDescription("List every declaration in a source file together with its documentation comment."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file path, absolute or relative to the project root")),
	)
	s.AddTool(symbolsTool, createSymbolsHandler(documenter, projectRoot))
}

// createDocumentationHandler creates the handler function for cortex_documentation.
func createDocumentationHandler(documenter Documenter, projectRoot string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		file, err := parseStringArg(argsMap, "file", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		path := resolvePath(projectRoot, file)

		symbol, err := parseStringArg(argsMap, "symbol", false)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		line, err := parsePositionArg(argsMap, "line")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		column, err := parsePositionArg(argsMap, "column")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var results []hover.Result
		switch {
		case symbol != "":
			found, err := documenter.Lookup(ctx, path, symbol)
			if err != nil {
				return toolError(err)
			}
			results = found

		case line != nil && column != nil:
			result, err := documenter.Hover(ctx, path, *line, *column)
			if errors.Is(err, hover.ErrNoDeclaration) {
				results = nil
				break
			}
			if err != nil {
				return toolError(err)
			}
			results = []hover.Result{*result}

		default:
			return mcp.NewToolResultError("either symbol or both line and column are required"), nil
		}

		return jsonResult(results)
	}
}

// createSymbolsHandler creates the handler function for cortex_documented_symbols.
func createSymbolsHandler(documenter Documenter, projectRoot string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		file, err := parseStringArg(argsMap, "file", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results, err := documenter.List(ctx, resolvePath(projectRoot, file))
		if err != nil {
			return toolError(err)
		}
		return jsonResult(results)
	}
}

// toolError reports caller mistakes as tool errors and everything else as a
// handler failure.
func toolError(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, hover.ErrUnsupportedLanguage) || errors.Is(err, hover.ErrInvalidPosition) || isNotExist(err) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, fmt.Errorf("documentation lookup failed: %w", err)
}

func jsonResult(results []hover.Result) (*mcp.CallToolResult, error) {
	if results == nil {
		results = []hover.Result{}
	}
	response := &DocumentationResponse{
		Results: results,
		Total:   len(results),
	}

	jsonData, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	// Return as text result (mcp-go convention)
	return mcp.NewToolResultText(string(jsonData)), nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cortex-hover/internal/mcp"
)

var mcpNoWatch bool

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for documentation lookups",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered coding
assistants read the documentation comments of your codebase.

The MCP server:
- Provides cortex_documentation (by position or symbol)
- Provides cortex_documented_symbols (every declaration of a file)
- Evicts cached parses when files change on disk
- Communicates via stdio (standard MCP transport)

Example:
  cortex-hover mcp`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpNoWatch, "no-watch", false, "do not watch the project for file changes")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	mcp.ServerVersion = Version
	server, err := mcp.NewMCPServer(&mcp.MCPServerConfig{
		ProjectRoot: projectPath,
		Watch:       !mcpNoWatch,
	}, svc)
	if err != nil {
		svc.Close()
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	return server.Serve(ctx)
}

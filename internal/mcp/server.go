package mcp

// Implementation Plan:
// 1. MCPServer struct with the hover service and watcher
// 2. NewMCPServer - creates server, registers documentation tools, creates watcher
// 3. Serve - starts MCP server on stdio with graceful shutdown
// 4. Graceful shutdown on SIGTERM/SIGINT
// 5. Clean error handling and logging

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/mvp-joe/cortex-hover/internal/hover"
)

// ServerVersion is reported to MCP clients.
var ServerVersion = "1.0.0"

// MCPServerConfig holds configuration for the MCP server.
type MCPServerConfig struct {
	ProjectRoot string // relative file arguments resolve against this
	Watch       bool   // evict cached documents on file changes
}

// DefaultMCPServerConfig returns a config rooted at the working directory.
func DefaultMCPServerConfig() *MCPServerConfig {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return &MCPServerConfig{
		ProjectRoot: root,
		Watch:       true,
	}
}

// MCPServer manages the MCP server lifecycle.
type MCPServer struct {
	config  *MCPServerConfig
	service *hover.Service
	watcher *FileWatcher
	mcp     *server.MCPServer
	serve   func(*server.MCPServer) error
}

// NewMCPServer creates a new MCP server over the given hover service.
// The server takes ownership of the service and closes it in Close.
func NewMCPServer(config *MCPServerConfig, service *hover.Service) (*MCPServer, error) {
	if config == nil {
		config = DefaultMCPServerConfig()
	}
	if service == nil {
		return nil, fmt.Errorf("hover service is required")
	}

	mcpServer := server.NewMCPServer(
		"cortex-hover",
		ServerVersion,
		server.WithToolCapabilities(true),
	)
	AddDocumentationTools(mcpServer, service, config.ProjectRoot)

	s := &MCPServer{
		config:  config,
		service: service,
		mcp:     mcpServer,
		serve:   serveStdio,
	}

	if config.Watch {
		watcher, err := NewFileWatcher(service, config.ProjectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to create file watcher: %w", err)
		}
		s.watcher = watcher
	}

	return s, nil
}

func serveStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// Serve starts the MCP server and blocks until shutdown.
func (s *MCPServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.watcher != nil {
		s.watcher.Start(ctx)
		defer s.watcher.Stop()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// serve returns nil when the client closes stdin
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("root", s.config.ProjectRoot).Msg("starting MCP server on stdio")
		errCh <- s.serve(s.mcp)
	}()

	select {
	case <-sigCh:
		log.Info().Msg("received shutdown signal, stopping gracefully")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		log.Info().Msg("client disconnected, stopping")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases all resources.
func (s *MCPServer) Close() error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.service != nil {
		s.service.Close()
	}
	return nil
}

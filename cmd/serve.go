package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"atoms-mcp/internal/atoms"
	"atoms-mcp/internal/config"
	"atoms-mcp/internal/mcpserver"
	"atoms-mcp/internal/resources"
	"atoms-mcp/internal/tools"
	"atoms-mcp/pkg/logging"
)

var (
	serveTransport string
	serveHost      string
	servePort      int
	serveDebug     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Atoms MCP server",
	Long: `Starts the MCP server exposing the Atoms platform tools and resources.

By default the server uses the stdio transport, which is what MCP hosts
like Claude Desktop and Cursor expect. Use --transport to expose the
server over SSE or streamable-http instead.

Configuration is read from ~/.config/atoms-mcp/config.yaml and the
ATOMS_API_KEY / ATOMS_API_URL environment variables; environment values
take precedence. The API key is required, but its absence only surfaces
on the first backend call so the server can still start and report the
problem through tool results.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the stdio MCP transport, so logs go to stderr.
	logLevel := logging.LevelInfo
	if serveDebug {
		logLevel = logging.LevelDebug
	}
	logging.Init(logLevel, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := atoms.NewClient(cfg)
	server := mcpserver.NewServer(mcpserver.Config{
		Transport: mcpserver.Transport(serveTransport),
		Host:      serveHost,
		Port:      servePort,
		Version:   GetVersion(),
	}, tools.NewProvider(client), resources.NewProvider())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	logging.Info("Serve", "MCP server listening on %s", server.GetEndpoint())

	select {
	case <-sigChan:
		logging.Info("Serve", "Received shutdown signal")
	case <-ctx.Done():
	}

	return server.Stop(context.Background())
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", string(mcpserver.TransportStdio), "Transport to use (stdio, sse, streamable-http)")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind for HTTP transports")
	serveCmd.Flags().IntVar(&servePort, "port", 8090, "Port to bind for HTTP transports")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
}

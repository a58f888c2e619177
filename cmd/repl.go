package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"atoms-mcp/internal/agent"
)

var (
	replEndpoint  string
	replTransport string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive MCP client for a running atoms-mcp server",
	Long: `Connects to a running atoms-mcp server as an MCP client and starts an
interactive REPL for exploring and executing tools.

The server must be running with an HTTP transport, for example:

  atoms-mcp serve --transport streamable-http --port 8090

Then connect with:

  atoms-mcp repl --endpoint http://localhost:8090/mcp`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	client := agent.NewClient(replEndpoint, agent.TransportType(replTransport))
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", replEndpoint, err)
	}
	defer client.Close()

	return agent.NewREPL(client).Run(ctx)
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replEndpoint, "endpoint", "http://localhost:8090/mcp", "MCP endpoint URL of the running server")
	replCmd.Flags().StringVar(&replTransport, "transport", string(agent.TransportStreamableHTTP), "Transport to use (streamable-http, sse)")
}

package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"atoms-mcp/internal/api"
	"atoms-mcp/pkg/logging"
)

// Transport selects how the MCP server talks to its client.
type Transport string

const (
	TransportStdio          Transport = "stdio"
	TransportSSE            Transport = "sse"
	TransportStreamableHTTP Transport = "streamable-http"
)

// Config holds the MCP server settings.
type Config struct {
	Transport Transport
	Host      string
	Port      int
	Version   string
}

// Server exposes the Atoms tool and resource providers over MCP.
type Server struct {
	config    Config
	tools     api.ToolProvider
	resources api.ResourceProvider

	server *server.MCPServer

	sseServer            *server.SSEServer
	streamableHTTPServer *server.StreamableHTTPServer
	stdioServer          *server.StdioServer

	ctx        context.Context
	cancelFunc context.CancelFunc
	mu         sync.Mutex
}

// NewServer creates an MCP server for the given providers.
func NewServer(cfg Config, tools api.ToolProvider, resources api.ResourceProvider) *Server {
	return &Server{
		config:    cfg,
		tools:     tools,
		resources: resources,
	}
}

// Start registers all tools and resources and starts the configured
// transport. It returns once the transport is listening; the server runs in
// the background until Stop is called or the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server != nil {
		return fmt.Errorf("mcp server already started")
	}

	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	mcpServer := server.NewMCPServer(
		"atoms",
		s.config.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)
	s.server = mcpServer

	serverTools := buildServerTools(s.tools)
	mcpServer.AddTools(serverTools...)
	logging.Info("MCPServer", "Registered %d tools", len(serverTools))

	serverResources := buildServerResources(s.resources)
	mcpServer.AddResources(serverResources...)
	logging.Info("MCPServer", "Registered %d resources", len(serverResources))

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case TransportSSE:
		logging.Info("MCPServer", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
		s.sseServer = server.NewSSEServer(
			s.server,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("MCPServer", err, "SSE server error")
			}
		}()

	case TransportStreamableHTTP:
		logging.Info("MCPServer", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = server.NewStreamableHTTPServer(s.server)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("MCPServer", err, "Streamable HTTP server error")
			}
		}()

	case TransportStdio:
		fallthrough
	default:
		logging.Info("MCPServer", "Starting MCP server with stdio transport")
		s.stdioServer = server.NewStdioServer(s.server)
		stdioServer := s.stdioServer
		serverCtx := s.ctx
		go func() {
			if err := stdioServer.Listen(serverCtx, os.Stdin, os.Stdout); err != nil {
				logging.Error("MCPServer", err, "Stdio server error")
			}
		}()
	}

	return nil
}

// Stop shuts the server down, waiting up to five seconds for the HTTP
// transports to drain.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return fmt.Errorf("mcp server not started")
	}

	logging.Info("MCPServer", "Stopping MCP server")

	if s.cancelFunc != nil {
		s.cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.sseServer != nil {
		if err := s.sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("MCPServer", err, "Error shutting down SSE server")
		}
	}
	if s.streamableHTTPServer != nil {
		if err := s.streamableHTTPServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("MCPServer", err, "Error shutting down streamable HTTP server")
		}
	}
	// The stdio transport stops on context cancellation.

	s.server = nil
	return nil
}

// GetEndpoint returns the endpoint URL for the configured transport.
func (s *Server) GetEndpoint() string {
	switch s.config.Transport {
	case TransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", s.config.Host, s.config.Port)
	case TransportStreamableHTTP:
		return fmt.Sprintf("http://%s:%d/mcp", s.config.Host, s.config.Port)
	default:
		return "stdio"
	}
}

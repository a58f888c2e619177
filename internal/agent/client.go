// Package agent implements an interactive MCP client for exploring a
// running atoms-mcp server.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TransportType selects the client transport.
type TransportType string

const (
	TransportSSE            TransportType = "sse"
	TransportStreamableHTTP TransportType = "streamable-http"
)

const requestTimeout = 30 * time.Second

// Client wraps an mcp-go client with tool and resource caches used by the
// REPL for listing and tab completion.
type Client struct {
	endpoint  string
	transport TransportType

	client        client.MCPClient
	toolCache     []mcp.Tool
	resourceCache []mcp.Resource
	mu            sync.RWMutex
}

// NewClient creates a client for the given endpoint and transport.
func NewClient(endpoint string, transport TransportType) *Client {
	return &Client{
		endpoint:  endpoint,
		transport: transport,
	}
}

// Connect starts the transport, performs the MCP handshake and loads the
// initial tool and resource lists.
func (c *Client) Connect(ctx context.Context) error {
	var mcpClient client.MCPClient
	switch c.transport {
	case TransportSSE:
		sseClient, err := client.NewSSEMCPClient(c.endpoint)
		if err != nil {
			return fmt.Errorf("failed to create SSE client: %w", err)
		}
		if err := sseClient.Start(ctx); err != nil {
			return fmt.Errorf("failed to start SSE client: %w", err)
		}
		mcpClient = sseClient
	case TransportStreamableHTTP:
		httpClient, err := client.NewStreamableHttpClient(c.endpoint)
		if err != nil {
			return fmt.Errorf("failed to create streamable-http client: %w", err)
		}
		if err := httpClient.Start(ctx); err != nil {
			return fmt.Errorf("failed to start streamable-http client: %w", err)
		}
		mcpClient = httpClient
	default:
		return fmt.Errorf("unsupported transport type: %s", c.transport)
	}
	c.client = mcpClient

	if err := c.initialize(ctx); err != nil {
		c.client.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}
	if err := c.RefreshTools(ctx); err != nil {
		return fmt.Errorf("initial tool listing failed: %w", err)
	}
	if err := c.RefreshResources(ctx); err != nil {
		return fmt.Errorf("initial resource listing failed: %w", err)
	}
	return nil
}

// Close shuts the transport down.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = "2024-11-05"
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "atoms-mcp-repl",
		Version: "1.0.0",
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

// RefreshTools reloads the tool cache from the server.
func (c *Client) RefreshTools(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.toolCache = result.Tools
	c.mu.Unlock()
	return nil
}

// RefreshResources reloads the resource cache from the server.
func (c *Client) RefreshResources(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := c.client.ListResources(timeoutCtx, mcp.ListResourcesRequest{})
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.resourceCache = result.Resources
	c.mu.Unlock()
	return nil
}

// Tools returns the cached tool list.
func (c *Client) Tools() []mcp.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tools := make([]mcp.Tool, len(c.toolCache))
	copy(tools, c.toolCache)
	return tools
}

// Resources returns the cached resource list.
func (c *Client) Resources() []mcp.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resources := make([]mcp.Resource, len(c.resourceCache))
	copy(resources, c.resourceCache)
	return resources
}

// FindTool returns the cached tool with the given name, or nil.
func (c *Client) FindTool(name string) *mcp.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.toolCache {
		if c.toolCache[i].Name == name {
			tool := c.toolCache[i]
			return &tool
		}
	}
	return nil
}

// CallTool executes a tool on the server.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return c.client.CallTool(timeoutCtx, req)
}

// ReadResource reads a resource from the server by URI.
func (c *Client) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return c.client.ReadResource(timeoutCtx, req)
}

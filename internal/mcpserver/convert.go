package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"atoms-mcp/internal/api"
	"atoms-mcp/pkg/logging"
)

// buildServerTools converts the provider's tool metadata into registrable
// MCP server tools, each wired to a handler that dispatches back into the
// provider.
func buildServerTools(provider api.ToolProvider) []server.ServerTool {
	metas := provider.GetTools()
	tools := make([]server.ServerTool, 0, len(metas))
	for _, meta := range metas {
		tools = append(tools, server.ServerTool{
			Tool: mcp.Tool{
				Name:        meta.Name,
				Description: meta.Description,
				InputSchema: convertToMCPSchema(meta.Parameters),
			},
			Handler: createToolHandler(provider, meta.Name),
		})
	}
	return tools
}

// createToolHandler adapts a provider tool to the mcp-go handler signature.
// Provider errors become error results rather than protocol failures, so the
// calling agent always receives readable text.
func createToolHandler(provider api.ToolProvider, toolName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]interface{})
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		result, err := provider.ExecuteTool(ctx, toolName, args)
		if err != nil {
			logging.Error("MCPServer", err, "Tool execution failed for %s", toolName)
			return mcp.NewToolResultError(fmt.Sprintf("Tool execution failed: %v", err)), nil
		}

		return convertToMCPResult(result), nil
	}
}

// convertToMCPSchema maps parameter metadata to the JSON Schema shape MCP
// clients expect.
func convertToMCPSchema(params []api.ParameterMetadata) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, param := range params {
		propSchema := map[string]interface{}{
			"type":        param.Type,
			"description": param.Description,
		}
		if param.Default != nil {
			propSchema["default"] = param.Default
		}
		if len(param.Enum) > 0 {
			propSchema["enum"] = param.Enum
		}
		properties[param.Name] = propSchema

		if param.Required {
			required = append(required, param.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// convertToMCPResult converts an internal tool result to the MCP format.
// String content becomes text content directly; anything else is marshaled
// to JSON first.
func convertToMCPResult(result *api.CallToolResult) *mcp.CallToolResult {
	mcpContent := make([]mcp.Content, len(result.Content))
	for i, content := range result.Content {
		if text, ok := content.(string); ok {
			mcpContent[i] = mcp.NewTextContent(text)
		} else {
			jsonBytes, _ := json.Marshal(content)
			mcpContent[i] = mcp.NewTextContent(string(jsonBytes))
		}
	}
	return &mcp.CallToolResult{
		Content: mcpContent,
		IsError: result.IsError,
	}
}

// buildServerResources converts the provider's resource metadata into
// registrable MCP server resources.
func buildServerResources(provider api.ResourceProvider) []server.ServerResource {
	metas := provider.GetResources()
	resources := make([]server.ServerResource, 0, len(metas))
	for _, meta := range metas {
		resources = append(resources, server.ServerResource{
			Resource: mcp.Resource{
				URI:         meta.URI,
				Name:        meta.Name,
				Description: meta.Description,
				MIMEType:    meta.MIMEType,
			},
			Handler: createResourceHandler(provider, meta.URI),
		})
	}
	return resources
}

func createResourceHandler(provider api.ResourceProvider, uri string) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := provider.ReadResource(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("resource read failed: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      content.URI,
				MIMEType: content.MIMEType,
				Text:     content.Text,
			},
		}, nil
	}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// CallToolResult represents the result of a tool call.
type CallToolResult struct {
	Content []interface{} `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolMetadata describes a tool that can be exposed over MCP.
type ToolMetadata struct {
	Name        string // e.g., "get_agents", "make_call"
	Description string
	Parameters  []ParameterMetadata
}

// ParameterMetadata describes a tool parameter.
type ParameterMetadata struct {
	Name        string
	Type        string // "string", "number", "boolean", "object"
	Required    bool
	Description string
	Default     interface{}
	Enum        []string // allowed values for string parameters, if closed
}

// ToolProvider is implemented by packages that expose tools.
type ToolProvider interface {
	// GetTools returns all tools this provider offers.
	GetTools() []ToolMetadata

	// ExecuteTool executes a tool by name.
	ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*CallToolResult, error)
}

// ResourceMetadata describes a resource that can be exposed over MCP.
type ResourceMetadata struct {
	Name        string
	URI         string
	Description string
	MIMEType    string
}

// ResourceContent is the content of a read resource.
type ResourceContent struct {
	URI      string
	MIMEType string
	Text     string
}

// ResourceProvider is implemented by packages that expose resources.
type ResourceProvider interface {
	// GetResources returns all resources this provider offers.
	GetResources() []ResourceMetadata

	// ReadResource reads a resource by URI.
	ReadResource(ctx context.Context, uri string) (*ResourceContent, error)
}

// TextResult creates a successful text result.
func TextResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []interface{}{text},
		IsError: false,
	}
}

// JSONResult creates a successful text result holding indented JSON.
// Marshal failures are reported as an error result instead of panicking,
// since tool results always reach the caller as text.
func JSONResult(v interface{}) *CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult(fmt.Sprintf("Failed to encode result: %v", err))
	}
	return TextResult(string(data))
}

// ErrorResult creates an error result.
func ErrorResult(message string) *CallToolResult {
	return &CallToolResult{
		Content: []interface{}{message},
		IsError: true,
	}
}

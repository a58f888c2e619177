// Package api defines the shared types that connect tool implementations to
// the MCP server layer.
//
// Tool packages implement ToolProvider and return CallToolResult values; the
// server layer (internal/mcpserver) converts provider metadata into MCP tool
// registrations and dispatches calls back to the provider. Resources follow
// the same pattern through ResourceProvider.
//
// Tool failures that a caller should see (backend errors, not-found
// conditions, validation problems) are communicated as error results via
// ErrorResult, not as Go errors. Go errors from ExecuteTool are reserved for
// protocol-level problems such as an unknown tool name.
package api

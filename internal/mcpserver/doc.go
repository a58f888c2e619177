// Package mcpserver hosts the MCP server that exposes the Atoms tools and
// resources to MCP clients. It supports stdio, SSE and streamable-http
// transports and adapts the internal provider interfaces to the mcp-go
// server types.
package mcpserver

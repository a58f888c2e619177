// Package logging provides structured logging for atoms-mcp, built on the
// standard slog package.
//
// All log entries carry a subsystem identifier so output can be filtered by
// component (Gateway, Auth, Tools, Server, REPL). Output goes to stderr so
// that the stdio MCP transport on stdout stays clean.
//
// Usage:
//
//	logging.Init(logging.LevelDebug, os.Stderr)
//	logging.Info("Server", "Starting MCP server on %s", addr)
//	logging.Error("Gateway", err, "Request to %s failed", path)
package logging

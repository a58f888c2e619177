// Package tools implements the Atoms platform tool set exposed over MCP.
//
// Every tool follows the same shape: validate and bound the input, issue one
// or more calls through the gateway, and project the response through an
// explicit allow-list before returning it as text. Transport-level failures
// (non-2xx responses) become readable error text in the tool result rather
// than Go errors; only configuration and auth resolution failures propagate
// as errors.
package tools

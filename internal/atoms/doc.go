// Package atoms is the HTTP gateway to the Atoms main-backend.
//
// Client.Do performs a single authenticated request and returns a normalized
// Result: non-2xx responses and unparseable bodies are data, not errors, so
// each tool decides how to surface them. Go errors out of the gateway are
// limited to configuration problems (missing API key), auth resolution
// failures, and transport-level failures (connection refused, context
// cancellation).
//
// The organization context derived from the API key is resolved once per
// process via a singleflight-guarded cache; see Client.AuthenticatedOrg.
package atoms

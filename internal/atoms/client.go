package atoms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"atoms-mcp/internal/config"
	"atoms-mcp/pkg/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const accountDetailsPath = "/account/get-account-details"

// Result is the normalized outcome of a backend call. Non-2xx responses are
// communicated via OK=false and Status, never as Go errors; an unparseable or
// empty body yields Data=nil without failing the call.
type Result struct {
	OK     bool
	Status int
	Data   interface{}
}

// Client performs authenticated requests against the Atoms main-backend.
//
// The organization context is resolved on first use and cached for the
// lifetime of the client. Concurrent cold-start calls share a single
// resolution attempt through singleflight; a failed attempt is never cached.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu  sync.RWMutex
	org *Org
	sf  singleflight.Group
}

// NewClient creates a client from the effective configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:    cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: http.DefaultClient,
	}
}

// Do performs an authenticated request against the backend.
//
// A missing API key is a fatal configuration error returned as a Go error.
// The organization context is resolved (cached after first success) before
// every call so the credential is validated even for the first request of a
// cold process. The body, when non-nil, is serialized as JSON.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (Result, error) {
	if c.apiKey == "" {
		return Result{}, &ConfigError{Variable: config.EnvAPIKey}
	}

	if _, err := c.AuthenticatedOrg(ctx); err != nil {
		return Result{}, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to serialize request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	requestID := uuid.NewString()
	logging.Debug("Gateway", "[%s] %s %s", requestID, method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data := decodeBody(resp.Body)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok {
		logging.Debug("Gateway", "[%s] %s %s returned %d", requestID, method, path, resp.StatusCode)
	}

	return Result{OK: ok, Status: resp.StatusCode, Data: data}, nil
}

// AuthenticatedOrg resolves the API key to an organization context.
//
// The first successful resolution is cached for the client's lifetime and
// never refreshed, even if the backend later revokes the key. Resolution
// failure leaves the cache empty so the next call retries.
func (c *Client) AuthenticatedOrg(ctx context.Context) (Org, error) {
	c.mu.RLock()
	cached := c.org
	c.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	v, err, _ := c.sf.Do("org", func() (interface{}, error) {
		// Re-check under the flight: a previous caller may have populated
		// the cache between the fast path and here.
		c.mu.RLock()
		cached := c.org
		c.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}

		org, err := c.resolveOrg(ctx)
		if err != nil {
			return Org{}, err
		}

		c.mu.Lock()
		c.org = &org
		c.mu.Unlock()
		logging.Info("Auth", "Resolved organization %s for user %s", org.OrgID, org.UserID)
		return org, nil
	})
	if err != nil {
		return Org{}, err
	}
	return v.(Org), nil
}

// resolveOrg calls the account-details endpoint directly rather than through
// Do, which would recurse back into AuthenticatedOrg.
func (c *Client) resolveOrg(ctx context.Context) (Org, error) {
	if c.apiKey == "" {
		return Org{}, &ConfigError{Variable: config.EnvAPIKey}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+accountDetailsPath, nil)
	if err != nil {
		return Org{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Org{}, fmt.Errorf("request to %s failed: %w", accountDetailsPath, err)
	}
	defer resp.Body.Close()

	data := decodeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			return Org{}, &InvalidCredentialError{}
		}
		raw, _ := json.Marshal(data)
		return Org{}, &AuthResolutionError{Status: resp.StatusCode, Body: string(raw)}
	}

	var account struct {
		UserID        string `json:"userId"`
		Organizations []struct {
			OrgID string `json:"orgId"`
		} `json:"organizations"`
	}
	if err := Decode(data, &account); err != nil || len(account.Organizations) == 0 {
		return Org{}, &NoOrganizationError{}
	}

	// The first organization in the array wins, deterministically.
	return Org{OrgID: account.Organizations[0].OrgID, UserID: account.UserID}, nil
}

// decodeBody parses a JSON response body, yielding nil for empty or
// malformed payloads.
func decodeBody(r io.Reader) interface{} {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return data
}

// FormatAPIError renders a transport failure as user-facing text. It prefers
// the backend's message field, then its error field, then the raw body.
func FormatAPIError(result Result) string {
	msg := ""
	if m, ok := result.Data.(map[string]interface{}); ok {
		if s, ok := m["message"].(string); ok {
			msg = s
		} else if s, ok := m["error"].(string); ok {
			msg = s
		}
	}
	if msg == "" {
		raw, _ := json.Marshal(result.Data)
		msg = string(raw)
	}
	return fmt.Sprintf("API error %d: %s", result.Status, msg)
}

// Unwrap strips the backend's optional data envelope: responses arrive either
// as the payload itself or wrapped as {"data": payload}.
func Unwrap(data interface{}) interface{} {
	if m, ok := data.(map[string]interface{}); ok {
		if inner, ok := m["data"]; ok {
			return inner
		}
	}
	return data
}

// Decode remaps loosely-typed response data onto a typed destination via a
// JSON round-trip. Unknown fields are ignored, matching the
// unknown-field-tolerant contract for responses.
func Decode(data interface{}, out interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

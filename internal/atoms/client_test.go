package atoms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"atoms-mcp/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountJSON = `{"userId":"user-1","organizations":[{"orgId":"org-1"},{"orgId":"org-2"}]}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.Config{APIKey: "test-key", APIURL: srv.URL})
}

func TestDoMissingAPIKey(t *testing.T) {
	client := NewClient(config.Config{APIURL: "http://unused.example"})

	_, err := client.Do(context.Background(), http.MethodGet, "/agent", nil)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), config.EnvAPIKey)
}

func TestAuthenticatedOrgCachesFirstSuccess(t *testing.T) {
	var accountCalls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == accountDetailsPath {
			accountCalls.Add(1)
			w.Write([]byte(accountJSON))
			return
		}
		w.Write([]byte(`{}`))
	}))

	org1, err := client.AuthenticatedOrg(context.Background())
	require.NoError(t, err)
	org2, err := client.AuthenticatedOrg(context.Background())
	require.NoError(t, err)

	// First organization wins, deterministically, and resolution happens once.
	assert.Equal(t, Org{OrgID: "org-1", UserID: "user-1"}, org1)
	assert.Equal(t, org1, org2)
	assert.Equal(t, int64(1), accountCalls.Load())
}

func TestAuthenticatedOrgConcurrentColdStart(t *testing.T) {
	var accountCalls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountCalls.Add(1)
		w.Write([]byte(accountJSON))
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			org, err := client.AuthenticatedOrg(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "org-1", org.OrgID)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), accountCalls.Load())
}

func TestAuthenticatedOrgInvalidCredential(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.AuthenticatedOrg(context.Background())
	require.Error(t, err)
	var invalidErr *InvalidCredentialError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, err.Error(), "Settings > API Keys")
}

func TestAuthenticatedOrgResolutionFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))

	_, err := client.AuthenticatedOrg(context.Background())
	require.Error(t, err)
	var resErr *AuthResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, http.StatusInternalServerError, resErr.Status)
	assert.Contains(t, resErr.Body, "boom")
}

func TestAuthenticatedOrgNoOrganizations(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userId":"user-1","organizations":[]}`))
	}))

	_, err := client.AuthenticatedOrg(context.Background())
	require.Error(t, err)
	var noOrgErr *NoOrganizationError
	assert.ErrorAs(t, err, &noOrgErr)
}

func TestAuthenticatedOrgFailureIsNotCached(t *testing.T) {
	var accountCalls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accountCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(accountJSON))
	}))

	_, err := client.AuthenticatedOrg(context.Background())
	require.Error(t, err)

	org, err := client.AuthenticatedOrg(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "org-1", org.OrgID)
	assert.Equal(t, int64(2), accountCalls.Load())
}

func TestDoAttachesCredentialsAndBody(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]interface{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == accountDetailsPath {
			w.Write([]byte(accountJSON))
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":"agent-1"}`))
	}))

	result, err := client.Do(context.Background(), http.MethodPost, "/agent", map[string]string{"name": "Test"})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]interface{}{"name": "Test"}, gotBody)
	assert.Equal(t, "agent-1", Unwrap(result.Data))
}

func TestDoNonOKIsNotAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == accountDetailsPath {
			w.Write([]byte(accountJSON))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"agent not found"}`))
	}))

	result, err := client.Do(context.Background(), http.MethodGet, "/agent/missing", nil)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusNotFound, result.Status)
}

func TestDoNonJSONBodyYieldsNilData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == accountDetailsPath {
			w.Write([]byte(accountJSON))
			return
		}
		w.Write([]byte("<html>not json</html>"))
	}))

	result, err := client.Do(context.Background(), http.MethodGet, "/agent", nil)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Nil(t, result.Data)
}

func TestFormatAPIError(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "prefers message field",
			result: Result{Status: 400, Data: map[string]interface{}{"message": "bad input", "error": "ignored"}},
			want:   "API error 400: bad input",
		},
		{
			name:   "falls back to error field",
			result: Result{Status: 500, Data: map[string]interface{}{"error": "server broke"}},
			want:   "API error 500: server broke",
		},
		{
			name:   "falls back to raw body",
			result: Result{Status: 502, Data: []interface{}{"odd"}},
			want:   `API error 502: ["odd"]`,
		},
		{
			name:   "nil data",
			result: Result{Status: 503, Data: nil},
			want:   "API error 503: null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAPIError(tt.result))
		})
	}
}

func TestUnwrap(t *testing.T) {
	wrapped := map[string]interface{}{"data": map[string]interface{}{"x": 1.0}}
	assert.Equal(t, map[string]interface{}{"x": 1.0}, Unwrap(wrapped))

	flat := map[string]interface{}{"x": 1.0}
	assert.Equal(t, flat, Unwrap(flat))

	assert.Nil(t, Unwrap(nil))
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	data := map[string]interface{}{
		"_id":          "agent-1",
		"name":         "Sales",
		"futureField":  "ignored",
		"workflowType": "single_prompt",
	}

	var agent Agent
	require.NoError(t, Decode(data, &agent))
	assert.Equal(t, "agent-1", agent.ID)
	assert.Equal(t, "single_prompt", agent.WorkflowType)
}

package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
)

// gatewayCall records one request issued through the mock gateway.
type gatewayCall struct {
	Method string
	Path   string
	Body   interface{}
}

// mockGateway replays queued results and records every request.
type mockGateway struct {
	calls     []gatewayCall
	responses []atoms.Result
	err       error
}

func (m *mockGateway) Do(ctx context.Context, method, path string, body interface{}) (atoms.Result, error) {
	m.calls = append(m.calls, gatewayCall{Method: method, Path: path, Body: body})
	if m.err != nil {
		return atoms.Result{}, m.err
	}
	if len(m.responses) == 0 {
		return atoms.Result{OK: true, Status: 200}, nil
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	return next, nil
}

// okJSON builds a successful gateway result from a raw JSON payload.
func okJSON(t *testing.T, raw string) atoms.Result {
	t.Helper()
	var data interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return atoms.Result{OK: true, Status: 200, Data: data}
}

// failJSON builds a non-2xx gateway result from a raw JSON payload.
func failJSON(t *testing.T, status int, raw string) atoms.Result {
	t.Helper()
	var data interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return atoms.Result{OK: false, Status: status, Data: data}
}

// textOf extracts the single text payload of a tool result.
func textOf(t *testing.T, result *api.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(string)
	require.True(t, ok, "tool result content should be text")
	return text
}

// jsonOf decodes a tool result's JSON text payload.
func jsonOf(t *testing.T, result *api.CallToolResult) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &out))
	return out
}

func TestGetToolsCatalog(t *testing.T) {
	provider := NewProvider(&mockGateway{})
	tools := provider.GetTools()
	require.Len(t, tools, 11)

	names := make(map[string]api.ToolMetadata, len(tools))
	for _, tool := range tools {
		names[tool.Name] = tool
	}
	for _, expected := range []string{
		"get_agents", "get_call_logs", "get_usage_stats", "debug_call",
		"get_campaigns", "create_agent", "update_agent_prompt",
		"update_agent_config", "delete_agent", "make_call", "get_phone_numbers",
	} {
		assert.Contains(t, names, expected)
	}

	// Required parameters are declared where the handler enforces them.
	requireParam := func(tool, param string) {
		for _, p := range names[tool].Parameters {
			if p.Name == param {
				assert.True(t, p.Required, "%s.%s should be required", tool, param)
				return
			}
		}
		t.Errorf("tool %s missing parameter %s", tool, param)
	}
	requireParam("debug_call", "call_id")
	requireParam("update_agent_prompt", "agent_id")
	requireParam("update_agent_prompt", "prompt")
	requireParam("update_agent_config", "agent_id")
	requireParam("delete_agent", "agent_id")
	requireParam("make_call", "agent_id")
	requireParam("make_call", "phone_number")
}

func TestExecuteToolUnknown(t *testing.T) {
	provider := NewProvider(&mockGateway{})
	_, err := provider.ExecuteTool(context.Background(), "no_such_tool", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

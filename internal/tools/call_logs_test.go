package tools

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atoms-mcp/internal/atoms"
)

const callLogsJSON = `{
	"data": {
		"totalCount": 42,
		"calls": [
			{
				"callId": "CALL-1",
				"callType": "telephony_outbound",
				"callStatus": "completed",
				"fromNumber": "+14155550100",
				"toNumber": "+14155550111",
				"disconnectionReason": "-"
			},
			{
				"callId": "CALL-2",
				"callType": "telephony_outbound",
				"callStatus": "failed",
				"fromNumber": "+14155550100",
				"toNumber": "+16505550122",
				"disconnectionReason": "-"
			},
			{
				"callId": "CALL-3",
				"callType": "telephony_inbound",
				"callStatus": "completed",
				"fromNumber": "+16505550133",
				"toNumber": "+14155550100",
				"disconnectionReason": "user_hangup"
			}
		]
	}
}`

func TestGetCallLogsQueryKeys(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{okJSON(t, callLogsJSON)}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{
		"call_status": "completed",
		"call_type":   "telephony_outbound",
		"start_date":  "2025-01-15",
		"end_date":    "2025-01-20",
		"limit":       float64(500),
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Len(t, gw.calls, 1)
	path := gw.calls[0].Path
	require.True(t, strings.HasPrefix(path, "/analytics/call-counts-log?"))
	query, err := url.ParseQuery(strings.TrimPrefix(path, "/analytics/call-counts-log?"))
	require.NoError(t, err)

	// This endpoint is limit-paged and uses dateFrom/dateTo keys.
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "100", query.Get("limit"), "limit should be capped at 100")
	assert.Equal(t, "2025-01-15", query.Get("dateFrom"))
	assert.Equal(t, "2025-01-20", query.Get("dateTo"))
	assert.Empty(t, query.Get("startDate"))
	assert.Empty(t, query.Get("endDate"))
	assert.Empty(t, query.Get("offset"))
	assert.Equal(t, "completed", query.Get("callStatus"))
	assert.Equal(t, "telephony_outbound", query.Get("callType"))
}

func TestGetCallLogsInvalidStatus(t *testing.T) {
	gw := &mockGateway{}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{
		"call_status": "INVALID_STATUS",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Invalid call_status")
	assert.Contains(t, textOf(t, result), "busy", "error should list the allowed values")
	assert.Empty(t, gw.calls)
}

func TestGetCallLogsPhoneFilter(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{okJSON(t, callLogsJSON)}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{
		"phone_number": "650555",
	})
	require.NoError(t, err)

	out := jsonOf(t, result)
	// The total stays the backend's pre-filter count; only the returned
	// page shrinks.
	assert.Equal(t, float64(42), out["total"])
	assert.Equal(t, float64(2), out["returned"])
	logs := out["logs"].([]interface{})
	require.Len(t, logs, 2)
	assert.Equal(t, "CALL-2", logs[0].(map[string]interface{})["callId"])
	assert.Equal(t, "CALL-3", logs[1].(map[string]interface{})["callId"])
}

func TestGetCallLogsHasErrorsFilter(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{okJSON(t, callLogsJSON)}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{
		"has_errors": true,
	})
	require.NoError(t, err)

	out := jsonOf(t, result)
	logs := out["logs"].([]interface{})
	// failed status or a disconnection reason other than "-" counts as an error.
	require.Len(t, logs, 2)
	assert.Equal(t, "CALL-2", logs[0].(map[string]interface{})["callId"])
	assert.Equal(t, "CALL-3", logs[1].(map[string]interface{})["callId"])
}

func TestGetCallLogsAgentNameResolution(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"agents": [{"_id": "agent-7", "name": "Support Bot"}]}`),
		okJSON(t, callLogsJSON),
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{
		"agent_name": "Support",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Len(t, gw.calls, 2)
	searchQuery, err := url.ParseQuery(strings.TrimPrefix(gw.calls[0].Path, "/agent?"))
	require.NoError(t, err)
	assert.Equal(t, "Support", searchQuery.Get("search"))
	assert.Equal(t, "5", searchQuery.Get("offset"))

	logQuery, err := url.ParseQuery(strings.TrimPrefix(gw.calls[1].Path, "/analytics/call-counts-log?"))
	require.NoError(t, err)
	assert.Equal(t, "agent-7", logQuery.Get("agentId"))
}

func TestGetCallLogsNoAgentsMatch(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{okJSON(t, `{"agents": []}`)}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{
		"agent_name": "Nobody",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, `No agents found matching "Nobody" in your organization.`, textOf(t, result))
	require.Len(t, gw.calls, 1, "no call-log query after a failed resolution")
}

func TestGetCallLogsMissingTotalCount(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{okJSON(t, `{"calls": [{"callId": "CALL-9", "disconnectionReason": "-"}]}`)}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_call_logs", map[string]interface{}{})
	require.NoError(t, err)

	out := jsonOf(t, result)
	assert.Equal(t, float64(1), out["total"], "falls back to the returned count")
	assert.Equal(t, float64(1), out["returned"])
}

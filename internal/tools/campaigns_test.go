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

const campaignListJSON = `{
	"data": {
		"campaigns": [
			{
				"_id": "camp-1",
				"name": "Winter Outreach",
				"status": "running",
				"agent": {"_id": "agent-1", "name": "Sales Bot"},
				"scheduledAt": "2025-01-10T09:00:00Z",
				"createdAt": "2025-01-05T00:00:00Z"
			},
			{
				"_id": "camp-2",
				"name": "Lapsed Users",
				"status": "draft",
				"createdAt": "2025-01-06T00:00:00Z"
			}
		]
	}
}`

func TestGetCampaignsQueryAndProjection(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{okJSON(t, campaignListJSON)}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_campaigns", map[string]interface{}{
		"status":     "running",
		"agent_name": "Sales",
		"limit":      float64(80),
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	query, err := url.ParseQuery(strings.TrimPrefix(gw.calls[0].Path, "/campaign?"))
	require.NoError(t, err)
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "50", query.Get("offset"), "limit should be capped at 50")
	assert.Equal(t, "running", query.Get("status"))
	assert.Equal(t, "Sales", query.Get("search"))
	assert.Empty(t, query.Get("limit"), "campaign listing is offset-paged")

	out := jsonOf(t, result)
	assert.Equal(t, float64(2), out["count"])
	campaigns := out["campaigns"].([]interface{})
	first := campaigns[0].(map[string]interface{})
	assert.Equal(t, "camp-1", first["_id"])
	assert.Equal(t, "Sales Bot", first["agentName"])
	second := campaigns[1].(map[string]interface{})
	assert.NotContains(t, second, "agentName", "absent agent omits the field")
}

func TestGetCampaignsInvalidStatus(t *testing.T) {
	gw := &mockGateway{}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "get_campaigns", map[string]interface{}{
		"status": "exploded",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Invalid status")
	assert.Contains(t, textOf(t, result), "cancelled", "error should list the allowed values")
	assert.Empty(t, gw.calls)
}

package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atoms-mcp/internal/atoms"
)

func TestUpdateAgentPromptWorkflowGraph(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": "wf-1", "workflowType": "workflow_graph"}}`),
		{OK: true, Status: 200},
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "You are a helpful receptionist.",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Len(t, gw.calls, 2)
	assert.Equal(t, http.MethodGet, gw.calls[0].Method)
	assert.Equal(t, "/agent/agent-1", gw.calls[0].Path)
	assert.Equal(t, http.MethodPatch, gw.calls[1].Method)
	assert.Equal(t, "/agent/agent-1", gw.calls[1].Path)
	body := gw.calls[1].Body.(map[string]interface{})
	assert.Equal(t, "You are a helpful receptionist.", body["globalPrompt"])

	assert.Equal(t, "Agent agent-1 global prompt updated successfully.", textOf(t, result))
}

func TestUpdateAgentPromptSinglePromptPreservesTools(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": "wf-1", "workflowType": "single_prompt"}}`),
		okJSON(t, `{"data": {"_id": "wf-1", "type": "single_prompt", "singlePromptConfig": {"prompt": "old", "tools": [{"name": "lookup_order"}]}}}`),
		{OK: true, Status: 200},
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "New prompt text.",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Len(t, gw.calls, 3)
	assert.Equal(t, "/workflow/get-workflow?workflowId=wf-1", gw.calls[1].Path)
	assert.Equal(t, http.MethodPatch, gw.calls[2].Method)
	assert.Equal(t, "/workflow/wf-1", gw.calls[2].Path)

	body := gw.calls[2].Body.(map[string]interface{})
	assert.Equal(t, "single_prompt", body["type"])
	config := body["singlePromptConfig"].(map[string]interface{})
	assert.Equal(t, "New prompt text.", config["prompt"])
	tools := config["tools"].([]interface{})
	require.Len(t, tools, 1, "existing workflow tools must survive the patch")
	assert.Equal(t, "lookup_order", tools[0].(map[string]interface{})["name"])

	assert.Equal(t, "Agent agent-1 prompt updated successfully.", textOf(t, result))
}

func TestUpdateAgentPromptEmptyToolsWhenAbsent(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": "wf-1", "workflowType": "single_prompt"}}`),
		okJSON(t, `{"data": {"_id": "wf-1", "type": "single_prompt"}}`),
		{OK: true, Status: 200},
	}}
	provider := NewProvider(gw)

	_, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "p",
	})
	require.NoError(t, err)

	config := gw.calls[2].Body.(map[string]interface{})["singlePromptConfig"].(map[string]interface{})
	tools := config["tools"].([]interface{})
	assert.Empty(t, tools)
}

func TestUpdateAgentPromptObjectWorkflowRef(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": {"_id": "wf-9"}, "workflowType": "single_prompt"}}`),
		okJSON(t, `{"data": {"_id": "wf-9", "type": "single_prompt", "singlePromptConfig": {"prompt": "old", "tools": []}}}`),
		{OK: true, Status: 200},
	}}
	provider := NewProvider(gw)

	_, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "p",
	})
	require.NoError(t, err)
	assert.Equal(t, "/workflow/get-workflow?workflowId=wf-9", gw.calls[1].Path)
}

func TestUpdateAgentPromptAgentNotFound(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{{OK: false, Status: 404}}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "missing",
		"prompt":   "p",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Agent not found: missing", textOf(t, result))
	require.Len(t, gw.calls, 1)
}

func TestUpdateAgentPromptNoWorkflow(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowType": "single_prompt"}}`),
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "p",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Agent agent-1 has no workflow associated. Cannot update prompt.", textOf(t, result))
	require.Len(t, gw.calls, 1)
}

func TestUpdateAgentPromptWorkflowFetchFailure(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": "wf-1", "workflowType": "single_prompt"}}`),
		failJSON(t, 500, `{"message": "backend down"}`),
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "p",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "Failed to fetch existing workflow (needed to preserve tools)")
	assert.Contains(t, text, "backend down")
	require.Len(t, gw.calls, 2, "patch must not run when the workflow fetch fails")
}

func TestUpdateAgentPromptUnrecognizedWorkflowType(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": "wf-1", "workflowType": "decision_tree"}}`),
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "p",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), `unrecognized workflow type "decision_tree"`)
	require.Len(t, gw.calls, 1, "unknown workflow types must not be patched")
}

func TestUpdateAgentPromptMissingWorkflowTypeTreatedAsSinglePrompt(t *testing.T) {
	gw := &mockGateway{responses: []atoms.Result{
		okJSON(t, `{"data": {"_id": "agent-1", "workflowId": "wf-1"}}`),
		okJSON(t, `{"data": {"_id": "wf-1", "singlePromptConfig": {"prompt": "old", "tools": []}}}`),
		{OK: true, Status: 200},
	}}
	provider := NewProvider(gw)

	result, err := provider.ExecuteTool(context.Background(), "update_agent_prompt", map[string]interface{}{
		"agent_id": "agent-1",
		"prompt":   "p",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, gw.calls, 3)
}

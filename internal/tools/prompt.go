package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
	"atoms-mcp/internal/contracts"
)

// handleUpdateAgentPrompt is the one multi-step flow in the tool set. Where
// the prompt lives depends on the agent's workflow type: workflow_graph
// agents keep it on the agent's globalPrompt field, single_prompt agents
// keep it inside the linked workflow. The single_prompt path is a
// read-modify-write so the workflow's configured tools survive the patch.
func (p *Provider) handleUpdateAgentPrompt(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	agentID := stringArg(args, "agent_id")
	if agentID == "" {
		return api.ErrorResult("agent_id argument is required"), nil
	}
	prompt := stringArg(args, "prompt")
	if !has(args, "prompt") {
		return api.ErrorResult("prompt argument is required"), nil
	}

	agentResult, err := p.gateway.Do(ctx, http.MethodGet, "/agent/"+url.PathEscape(agentID), nil)
	if err != nil {
		return nil, err
	}
	if !agentResult.OK {
		if agentResult.Status == http.StatusNotFound {
			return api.ErrorResult(fmt.Sprintf("Agent not found: %s", agentID)), nil
		}
		return api.ErrorResult(atoms.FormatAPIError(agentResult)), nil
	}

	var agent atoms.Agent
	if err := atoms.Decode(atoms.Unwrap(agentResult.Data), &agent); err != nil {
		return api.ErrorResult(fmt.Sprintf("Failed to parse agent: %v", err)), nil
	}
	if agent.WorkflowID == "" {
		return api.ErrorResult(fmt.Sprintf("Agent %s has no workflow associated. Cannot update prompt.", agentID)), nil
	}

	switch agent.WorkflowType {
	case contracts.WorkflowTypeWorkflowGraph:
		return p.patchGlobalPrompt(ctx, agentID, prompt)
	case contracts.WorkflowTypeSinglePrompt, "":
		return p.patchWorkflowPrompt(ctx, agentID, string(agent.WorkflowID), prompt)
	default:
		return api.ErrorResult(fmt.Sprintf("Agent %s has unrecognized workflow type %q. Cannot update prompt.",
			agentID, agent.WorkflowType)), nil
	}
}

func (p *Provider) patchGlobalPrompt(ctx context.Context, agentID, prompt string) (*api.CallToolResult, error) {
	result, err := p.gateway.Do(ctx, http.MethodPatch, "/agent/"+url.PathEscape(agentID),
		map[string]interface{}{"globalPrompt": prompt})
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}
	return api.TextResult(fmt.Sprintf("Agent %s global prompt updated successfully.", agentID)), nil
}

func (p *Provider) patchWorkflowPrompt(ctx context.Context, agentID, workflowID, prompt string) (*api.CallToolResult, error) {
	workflowResult, err := p.gateway.Do(ctx, http.MethodGet,
		"/workflow/get-workflow?workflowId="+url.QueryEscape(workflowID), nil)
	if err != nil {
		return nil, err
	}
	if !workflowResult.OK {
		return api.ErrorResult(fmt.Sprintf("Failed to fetch existing workflow (needed to preserve tools): %s",
			atoms.FormatAPIError(workflowResult))), nil
	}

	var workflow atoms.Workflow
	if err := atoms.Decode(atoms.Unwrap(workflowResult.Data), &workflow); err != nil {
		return api.ErrorResult(fmt.Sprintf("Failed to parse existing workflow: %v", err)), nil
	}
	existingTools := []interface{}{}
	if workflow.SinglePromptConfig != nil && workflow.SinglePromptConfig.Tools != nil {
		existingTools = workflow.SinglePromptConfig.Tools
	}

	result, err := p.gateway.Do(ctx, http.MethodPatch, "/workflow/"+url.PathEscape(workflowID),
		map[string]interface{}{
			"type": contracts.WorkflowTypeSinglePrompt,
			"singlePromptConfig": map[string]interface{}{
				"prompt": prompt,
				"tools":  existingTools,
			},
		})
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}
	return api.TextResult(fmt.Sprintf("Agent %s prompt updated successfully.", agentID)), nil
}

package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
)

const maxAgentPageSize = 50

// agentSummary is the allow-list projection of an agent returned by
// get_agents. Raw backend objects are never passed through.
type agentSummary struct {
	ID               string                   `json:"_id"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	SLMModel         string                   `json:"slmModel"`
	Synthesizer      *atoms.SynthesizerConfig `json:"synthesizer,omitempty"`
	Language         *atoms.LanguageConfig    `json:"language,omitempty"`
	AllowInboundCall *bool                    `json:"allowInboundCall,omitempty"`
	Archived         *bool                    `json:"archived,omitempty"`
	CreatedAt        string                   `json:"createdAt"`
	UpdatedAt        string                   `json:"updatedAt"`
	FirstMessage     string                   `json:"firstMessage,omitempty"`
	WorkflowType     string                   `json:"workflowType,omitempty"`
	BackgroundSound  string                   `json:"backgroundSound,omitempty"`
	SmartTurnConfig  *atoms.SmartTurnConfig   `json:"smartTurnConfig,omitempty"`
	DenoisingConfig  *atoms.ToggleConfig      `json:"denoisingConfig,omitempty"`
	RedactionConfig  *atoms.ToggleConfig      `json:"redactionConfig,omitempty"`
	TotalCalls       int                      `json:"totalCalls"`
}

func (p *Provider) handleGetAgents(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	limit := capLimit(intArg(args, "limit", 20), maxAgentPageSize)

	query := url.Values{}
	query.Set("page", "1")
	query.Set("offset", strconv.Itoa(limit))
	if name := stringArg(args, "agent_name"); name != "" {
		query.Set("search", name)
	}
	if boolArg(args, "include_archived") {
		query.Set("archived", "true")
	}

	result, err := p.gateway.Do(ctx, http.MethodGet, "/agent?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	var payload struct {
		Agents []atoms.Agent `json:"agents"`
	}
	if err := atoms.Decode(atoms.Unwrap(result.Data), &payload); err != nil {
		return api.ErrorResult(fmt.Sprintf("Failed to parse agent list: %v", err)), nil
	}

	summaries := make([]agentSummary, 0, len(payload.Agents))
	for _, agent := range payload.Agents {
		summaries = append(summaries, summarizeAgent(agent))
	}

	return api.JSONResult(map[string]interface{}{
		"count":  len(summaries),
		"agents": summaries,
	}), nil
}

func summarizeAgent(agent atoms.Agent) agentSummary {
	totalCalls := 0
	if agent.TotalCalls != nil {
		totalCalls = *agent.TotalCalls
	}
	return agentSummary{
		ID:               agent.ID,
		Name:             agent.Name,
		Description:      agent.Description,
		SLMModel:         agent.SLMModel,
		Synthesizer:      agent.Synthesizer,
		Language:         agent.Language,
		AllowInboundCall: agent.AllowInboundCall,
		Archived:         agent.Archived,
		CreatedAt:        agent.CreatedAt,
		UpdatedAt:        agent.UpdatedAt,
		FirstMessage:     agent.FirstMessage,
		WorkflowType:     agent.WorkflowType,
		BackgroundSound:  agent.BackgroundSound,
		SmartTurnConfig:  agent.SmartTurnConfig,
		DenoisingConfig:  agent.DenoisingConfig,
		RedactionConfig:  agent.RedactionConfig,
		TotalCalls:       totalCalls,
	}
}

func (p *Provider) handleCreateAgent(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	language := stringArg(args, "language")
	if language == "" {
		language = "en"
	}

	body := map[string]interface{}{
		// Creation always carries a language block; switching starts disabled.
		"language": map[string]interface{}{
			"default":   language,
			"supported": []string{language},
			"switching": map[string]interface{}{"isEnabled": false},
		},
	}
	if name := stringArg(args, "name"); has(args, "name") {
		body["name"] = name
	}
	if description := stringArg(args, "description"); has(args, "description") {
		body["description"] = description
	}

	result, err := p.gateway.Do(ctx, http.MethodPost, "/agent", body)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	return api.JSONResult(map[string]interface{}{
		"message": "Agent created successfully",
		"agentId": atoms.Unwrap(result.Data),
	}), nil
}

func (p *Provider) handleDeleteAgent(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	agentID := stringArg(args, "agent_id")
	if agentID == "" {
		return api.ErrorResult("agent_id argument is required"), nil
	}

	result, err := p.gateway.Do(ctx, http.MethodDelete, "/agent/"+url.PathEscape(agentID)+"/archive", nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		if result.Status == http.StatusNotFound {
			return api.ErrorResult(fmt.Sprintf("Agent not found: %s", agentID)), nil
		}
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	return api.TextResult(fmt.Sprintf("Agent %s has been archived successfully.", agentID)), nil
}

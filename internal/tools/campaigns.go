package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
	"atoms-mcp/internal/contracts"
)

const maxCampaignPageSize = 50

// campaignSummary is the allow-list projection of a campaign returned by
// get_campaigns.
type campaignSummary struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	AgentName   string `json:"agentName,omitempty"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func (p *Provider) handleGetCampaigns(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	limit := capLimit(intArg(args, "limit", 20), maxCampaignPageSize)

	if status := stringArg(args, "status"); status != "" && !contracts.Contains(contracts.ToolCampaignStatuses, status) {
		return api.ErrorResult(fmt.Sprintf("Invalid status %q. Allowed values: %s",
			status, strings.Join(contracts.ToolCampaignStatuses, ", "))), nil
	}

	query := url.Values{}
	query.Set("page", "1")
	query.Set("offset", strconv.Itoa(limit))
	if status := stringArg(args, "status"); status != "" {
		query.Set("status", status)
	}
	if name := stringArg(args, "agent_name"); name != "" {
		query.Set("search", name)
	}

	result, err := p.gateway.Do(ctx, http.MethodGet, "/campaign?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	var payload struct {
		Campaigns []atoms.Campaign `json:"campaigns"`
	}
	if err := atoms.Decode(atoms.Unwrap(result.Data), &payload); err != nil {
		return api.ErrorResult(fmt.Sprintf("Failed to parse campaign list: %v", err)), nil
	}

	summaries := make([]campaignSummary, 0, len(payload.Campaigns))
	for _, c := range payload.Campaigns {
		summary := campaignSummary{
			ID:          c.ID,
			Name:        c.Name,
			Status:      c.Status,
			ScheduledAt: c.ScheduledAt,
			CreatedAt:   c.CreatedAt,
		}
		if c.Agent != nil {
			summary.AgentName = c.Agent.Name
		}
		summaries = append(summaries, summary)
	}

	return api.JSONResult(map[string]interface{}{
		"count":     len(summaries),
		"campaigns": summaries,
	}), nil
}

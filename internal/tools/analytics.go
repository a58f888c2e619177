package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
)

// usageStatsDefaultWindow is the reporting window used when the caller does
// not provide dates.
const usageStatsDefaultWindow = 7 * 24 * time.Hour

func (p *Provider) handleGetUsageStats(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	startDate := stringArg(args, "start_date")
	if startDate == "" {
		startDate = time.Now().Add(-usageStatsDefaultWindow).Format("2006-01-02")
	}
	endDate := stringArg(args, "end_date")
	if endDate == "" {
		endDate = time.Now().Format("2006-01-02")
	}

	agentName := stringArg(args, "agent_name")
	var agentID string
	if agentName != "" {
		id, count, result, err := p.resolveAgentID(ctx, agentName)
		if err != nil {
			return nil, err
		}
		if !result.OK {
			return api.ErrorResult(atoms.FormatAPIError(result)), nil
		}
		if count == 0 {
			return api.TextResult("No agents found matching your criteria."), nil
		}
		agentID = id
	}

	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)
	if agentID != "" {
		query.Set("agentId", agentID)
	}

	result, err := p.gateway.Do(ctx, http.MethodGet, "/analytics/summary?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	summary := map[string]interface{}{
		"period": map[string]string{"from": startDate, "to": endDate},
		"stats":  atoms.Unwrap(result.Data),
	}
	if agentName != "" {
		summary["agentFilter"] = agentName
	}

	return api.JSONResult(summary), nil
}

func (p *Provider) handleDebugCall(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	callID := stringArg(args, "call_id")
	if callID == "" {
		return api.ErrorResult("call_id argument is required"), nil
	}

	result, err := p.gateway.Do(ctx, http.MethodGet, "/analytics/conversation-details/"+url.PathEscape(callID), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		if result.Status == http.StatusNotFound {
			return api.ErrorResult(fmt.Sprintf(
				"Call not found: %s. Make sure you're using the full callId (e.g. CALL-1234567890-abc123).", callID)), nil
		}
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	return api.JSONResult(atoms.Unwrap(result.Data)), nil
}

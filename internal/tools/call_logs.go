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

const maxCallLogPageSize = 100

func (p *Provider) handleGetCallLogs(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	limit := capLimit(intArg(args, "limit", 20), maxCallLogPageSize)

	if status := stringArg(args, "call_status"); status != "" && !contracts.Contains(contracts.ToolCallStatuses, status) {
		return api.ErrorResult(fmt.Sprintf("Invalid call_status %q. Allowed values: %s",
			status, strings.Join(contracts.ToolCallStatuses, ", "))), nil
	}
	if callType := stringArg(args, "call_type"); callType != "" && !contracts.Contains(contracts.CallTypes, callType) {
		return api.ErrorResult(fmt.Sprintf("Invalid call_type %q. Allowed values: %s",
			callType, strings.Join(contracts.CallTypes, ", "))), nil
	}

	// If filtering by agent name, resolve the agent id first.
	var agentID string
	if name := stringArg(args, "agent_name"); name != "" {
		id, count, result, err := p.resolveAgentID(ctx, name)
		if err != nil {
			return nil, err
		}
		if !result.OK {
			return api.ErrorResult(atoms.FormatAPIError(result)), nil
		}
		if count == 0 {
			return api.TextResult(fmt.Sprintf("No agents found matching %q in your organization.", name)), nil
		}
		agentID = id
	}

	query := url.Values{}
	query.Set("page", "1")
	query.Set("limit", strconv.Itoa(limit))
	if agentID != "" {
		query.Set("agentId", agentID)
	}
	if status := stringArg(args, "call_status"); status != "" {
		query.Set("callStatus", status)
	}
	if callType := stringArg(args, "call_type"); callType != "" {
		query.Set("callType", callType)
	}
	if startDate := stringArg(args, "start_date"); startDate != "" {
		query.Set("dateFrom", startDate)
	}
	if endDate := stringArg(args, "end_date"); endDate != "" {
		query.Set("dateTo", endDate)
	}

	result, err := p.gateway.Do(ctx, http.MethodGet, "/analytics/call-counts-log?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	var payload struct {
		Calls      []atoms.CallLogEntry `json:"calls"`
		TotalCount *int                 `json:"totalCount"`
	}
	if err := atoms.Decode(atoms.Unwrap(result.Data), &payload); err != nil {
		return api.ErrorResult(fmt.Sprintf("Failed to parse call logs: %v", err)), nil
	}

	calls := payload.Calls

	// Client-side post-filters for criteria the backend query does not
	// support. These run over the already-paginated result set, so they only
	// reduce the returned page.
	if phone := stringArg(args, "phone_number"); phone != "" {
		calls = filterCalls(calls, func(c atoms.CallLogEntry) bool {
			return strings.Contains(c.FromNumber, phone) || strings.Contains(c.ToNumber, phone)
		})
	}
	if boolArg(args, "has_errors") {
		calls = filterCalls(calls, func(c atoms.CallLogEntry) bool {
			return c.CallStatus == "failed" || c.DisconnectionReason != "-"
		})
	}

	// The reported total is the backend's pre-filter count; post-filters
	// shrink the returned page without touching it.
	total := len(calls)
	if payload.TotalCount != nil {
		total = *payload.TotalCount
	}

	return api.JSONResult(map[string]interface{}{
		"total":    total,
		"returned": len(calls),
		"logs":     calls,
	}), nil
}

func filterCalls(calls []atoms.CallLogEntry, keep func(atoms.CallLogEntry) bool) []atoms.CallLogEntry {
	filtered := make([]atoms.CallLogEntry, 0, len(calls))
	for _, c := range calls {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

package tools

import (
	"context"
	"net/http"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
)

func (p *Provider) handleMakeCall(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	agentID := stringArg(args, "agent_id")
	phoneNumber := stringArg(args, "phone_number")
	if agentID == "" {
		return api.ErrorResult("agent_id argument is required"), nil
	}
	if phoneNumber == "" {
		return api.ErrorResult("phone_number argument is required"), nil
	}

	body := map[string]interface{}{
		"agentId":     agentID,
		"phoneNumber": phoneNumber,
	}
	if fromNumber := stringArg(args, "from_number"); fromNumber != "" {
		body["fromNumber"] = fromNumber
	}

	result, err := p.gateway.Do(ctx, http.MethodPost, "/conversation/outbound", body)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	var call struct {
		CallID string `json:"callId"`
		Status string `json:"status"`
	}
	if err := atoms.Decode(atoms.Unwrap(result.Data), &call); err != nil {
		call = struct {
			CallID string `json:"callId"`
			Status string `json:"status"`
		}{}
	}
	if call.Status == "" {
		call.Status = "initiated"
	}

	return api.JSONResult(map[string]interface{}{
		"message": "Outbound call initiated",
		"callId":  call.CallID,
		"status":  call.Status,
	}), nil
}

package tools

import (
	"context"
	"fmt"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
	"atoms-mcp/internal/contracts"
	"atoms-mcp/pkg/logging"
)

// Gateway is the slice of the atoms client the tools depend on.
type Gateway interface {
	Do(ctx context.Context, method, path string, body interface{}) (atoms.Result, error)
}

// Provider implements api.ToolProvider for the Atoms platform tools.
// It is stateless apart from the gateway and safe for concurrent use.
type Provider struct {
	gateway Gateway
}

// NewProvider creates a tool provider backed by the given gateway.
func NewProvider(gateway Gateway) *Provider {
	return &Provider{gateway: gateway}
}

// GetTools returns metadata for all Atoms tools this provider offers.
func (p *Provider) GetTools() []api.ToolMetadata {
	return []api.ToolMetadata{
		{
			Name: "get_agents",
			Description: "List AI agents in your organization. Returns agent configuration including " +
				"voice, LLM model, language settings, and call statistics.",
			Parameters: []api.ParameterMetadata{
				{Name: "agent_name", Type: "string", Description: "Filter by agent name (partial match, case-insensitive)"},
				{Name: "include_archived", Type: "boolean", Description: "Include archived agents", Default: false},
				{Name: "limit", Type: "number", Description: "Max results to return (default 20, max 50)", Default: 20},
			},
		},
		{
			Name: "get_call_logs",
			Description: "Get call logs for your organization. Filter by status, type, date range, agent name, " +
				"or phone number. Returns call metadata, duration, cost, errors, and transcript summary.",
			Parameters: []api.ParameterMetadata{
				{Name: "call_status", Type: "string", Description: "Filter by call status", Enum: contracts.ToolCallStatuses},
				{Name: "call_type", Type: "string", Description: "Filter by call type", Enum: contracts.CallTypes},
				{Name: "agent_name", Type: "string", Description: "Filter by agent name (partial match, case-insensitive)"},
				{Name: "phone_number", Type: "string", Description: "Filter by phone number (matches fromNumber or toNumber)"},
				{Name: "start_date", Type: "string", Description: "Start date filter (ISO 8601, e.g. 2025-01-15)"},
				{Name: "end_date", Type: "string", Description: "End date filter (ISO 8601, e.g. 2025-01-20)"},
				{Name: "has_errors", Type: "boolean", Description: "If true, only return calls that have errors"},
				{Name: "limit", Type: "number", Description: "Max results to return (default 20, max 100)", Default: 20},
			},
		},
		{
			Name: "get_usage_stats",
			Description: "Get call usage statistics for your organization — total calls, duration, costs, and " +
				"status breakdown. Useful for understanding usage patterns and costs.",
			Parameters: []api.ParameterMetadata{
				{Name: "start_date", Type: "string", Description: "Start date (ISO 8601). Defaults to 7 days ago."},
				{Name: "end_date", Type: "string", Description: "End date (ISO 8601). Defaults to now."},
				{Name: "agent_name", Type: "string", Description: "Filter to a specific agent (partial match)"},
			},
		},
		{
			Name: "debug_call",
			Description: "Deep-dive into a single call for debugging. Returns full transcript, errors, timing, " +
				"cost breakdown, post-call analytics, and agent config at time of call. " +
				"Use a callId (e.g. CALL-1234567890-abc123).",
			Parameters: []api.ParameterMetadata{
				{Name: "call_id", Type: "string", Required: true, Description: "The callId to debug (e.g. CALL-1234567890-abc123)"},
			},
		},
		{
			Name: "get_campaigns",
			Description: "List outbound calling campaigns for your organization. Shows campaign status, " +
				"progress, agent used, and audience size.",
			Parameters: []api.ParameterMetadata{
				{Name: "status", Type: "string", Description: "Filter by campaign status", Enum: contracts.ToolCampaignStatuses},
				{Name: "agent_name", Type: "string", Description: "Filter by agent name (partial match)"},
				{Name: "limit", Type: "number", Description: "Max results (default 20, max 50)", Default: 20},
			},
		},
		{
			Name: "create_agent",
			Description: "Create a new AI agent in your organization. Returns the created agent's ID. " +
				"The agent prompt is set separately via update_agent_prompt after creation.",
			Parameters: []api.ParameterMetadata{
				{Name: "name", Type: "string", Description: "Name for the new agent"},
				{Name: "description", Type: "string", Description: "Short description of what the agent does"},
				{Name: "language", Type: "string", Description: "Default language code (e.g. en, hi, ta). Defaults to en.", Default: "en"},
			},
		},
		{
			Name: "update_agent_prompt",
			Description: "Update an agent's system prompt / instructions. Pass the full new prompt text. " +
				"This updates the agent's workflow with the new prompt.",
			Parameters: []api.ParameterMetadata{
				{Name: "agent_id", Type: "string", Required: true, Description: "The agent ID to update"},
				{Name: "prompt", Type: "string", Required: true, Description: "The new system prompt for the agent"},
			},
		},
		{
			Name: "update_agent_config",
			Description: "Update an agent's configuration (name, language, first message, voice settings, etc.). " +
				"Only provided fields are updated. To update the agent's prompt/instructions, use " +
				"update_agent_prompt instead.",
			Parameters: []api.ParameterMetadata{
				{Name: "agent_id", Type: "string", Required: true, Description: "The agent ID to update"},
				{Name: "name", Type: "string", Description: "New agent name"},
				{Name: "description", Type: "string", Description: "Agent description"},
				{Name: "language", Type: "object", Description: "Language configuration: default, supported, switching_enabled"},
				{Name: "first_message", Type: "string", Description: "First message when call starts (max 500 chars)"},
				{Name: "synthesizer", Type: "object", Description: "Voice synthesizer configuration: voiceConfig, speed, consistency, similarity"},
				{Name: "allow_inbound_call", Type: "boolean", Description: "Whether to allow inbound calls"},
				{Name: "smart_turn_config", Type: "object", Description: "Smart turn detection configuration: isEnabled, waitTimeInSecs"},
				{Name: "background_sound", Type: "string", Description: "Background sound option"},
			},
		},
		{
			Name: "delete_agent",
			Description: "Archive (soft-delete) an agent by its ID. The agent will no longer be active " +
				"but can be recovered.",
			Parameters: []api.ParameterMetadata{
				{Name: "agent_id", Type: "string", Required: true, Description: "The agent ID to archive"},
			},
		},
		{
			Name: "make_call",
			Description: "Initiate an outbound phone call using a specific agent. The agent will call the " +
				"provided phone number and follow its configured prompt.",
			Parameters: []api.ParameterMetadata{
				{Name: "agent_id", Type: "string", Required: true, Description: "The agent ID to use for the call"},
				{Name: "phone_number", Type: "string", Required: true, Description: "Phone number to call in E.164 format (e.g. +14155551234)"},
				{Name: "from_number", Type: "string", Description: "Caller ID / from number in E.164 format. Must be a number owned by your org. If omitted, a default number is used."},
			},
		},
		{
			Name: "get_phone_numbers",
			Description: "List phone numbers acquired by your organization. Shows number, country, " +
				"capabilities, and which agent it's assigned to.",
			Parameters: []api.ParameterMetadata{},
		},
	}
}

// ExecuteTool executes an Atoms tool by name with the provided arguments.
func (p *Provider) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	logging.Debug("Tools", "Executing tool %s", toolName)

	switch toolName {
	case "get_agents":
		return p.handleGetAgents(ctx, args)
	case "get_call_logs":
		return p.handleGetCallLogs(ctx, args)
	case "get_usage_stats":
		return p.handleGetUsageStats(ctx, args)
	case "debug_call":
		return p.handleDebugCall(ctx, args)
	case "get_campaigns":
		return p.handleGetCampaigns(ctx, args)
	case "create_agent":
		return p.handleCreateAgent(ctx, args)
	case "update_agent_prompt":
		return p.handleUpdateAgentPrompt(ctx, args)
	case "update_agent_config":
		return p.handleUpdateAgentConfig(ctx, args)
	case "delete_agent":
		return p.handleDeleteAgent(ctx, args)
	case "make_call":
		return p.handleMakeCall(ctx, args)
	case "get_phone_numbers":
		return p.handleGetPhoneNumbers(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolName)
	}
}

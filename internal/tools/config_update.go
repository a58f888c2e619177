package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
)

func (p *Provider) handleUpdateAgentConfig(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	agentID := stringArg(args, "agent_id")
	if agentID == "" {
		return api.ErrorResult("agent_id argument is required"), nil
	}

	body := map[string]interface{}{}
	if has(args, "name") {
		body["name"] = stringArg(args, "name")
	}
	if has(args, "description") {
		body["description"] = stringArg(args, "description")
	}
	if has(args, "first_message") {
		body["firstMessage"] = stringArg(args, "first_message")
	}
	if has(args, "allow_inbound_call") {
		body["allowInboundCall"] = boolArg(args, "allow_inbound_call")
	}
	if has(args, "smart_turn_config") {
		body["smartTurnConfig"] = objectArg(args, "smart_turn_config")
	}
	if has(args, "background_sound") {
		body["backgroundSound"] = stringArg(args, "background_sound")
	}
	if has(args, "language") {
		body["language"] = assembleLanguage(objectArg(args, "language"))
	}
	if has(args, "synthesizer") {
		body["synthesizer"] = assembleSynthesizer(objectArg(args, "synthesizer"))
	}

	if len(body) == 0 {
		return api.TextResult("No fields provided to update."), nil
	}

	result, err := p.gateway.Do(ctx, http.MethodPatch, "/agent/"+url.PathEscape(agentID), body)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		if result.Status == http.StatusNotFound {
			return api.ErrorResult(fmt.Sprintf("Agent not found: %s", agentID)), nil
		}
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	return api.TextResult(fmt.Sprintf("Agent %s config updated successfully. Fields updated: %s",
		agentID, strings.Join(sortedKeys(body), ", "))), nil
}

// assembleLanguage rebuilds the nested language object the backend expects
// from the tool's flat input. A missing supported list falls back to the
// default language, and the switching toggle is nested only when supplied.
func assembleLanguage(input map[string]interface{}) map[string]interface{} {
	language := map[string]interface{}{}
	if def, ok := input["default"].(string); ok {
		language["default"] = def
	}
	if supported, ok := input["supported"]; ok {
		language["supported"] = supported
	} else if def, ok := input["default"].(string); ok {
		language["supported"] = []string{def}
	}
	if enabled, ok := input["switching_enabled"].(bool); ok {
		language["switching"] = map[string]interface{}{"isEnabled": enabled}
	}
	return language
}

// assembleSynthesizer copies only the supplied synthesizer fields into the
// backend's nested shape.
func assembleSynthesizer(input map[string]interface{}) map[string]interface{} {
	synthesizer := map[string]interface{}{}
	if voiceConfig, ok := input["voiceConfig"]; ok {
		synthesizer["voiceConfig"] = voiceConfig
	}
	for _, field := range []string{"speed", "consistency", "similarity"} {
		if value, ok := input[field]; ok {
			synthesizer[field] = value
		}
	}
	return synthesizer
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package tools

import (
	"context"
	"fmt"
	"net/http"

	"atoms-mcp/internal/api"
	"atoms-mcp/internal/atoms"
)

// phoneNumberSummary is the allow-list projection of a phone number entry
// returned by get_phone_numbers, flattened from either response layout.
type phoneNumberSummary struct {
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Country         string `json:"country,omitempty"`
	Provider        string `json:"provider,omitempty"`
	AssignedAgentID string `json:"assignedAgentId,omitempty"`
	IsActive        *bool  `json:"isActive,omitempty"`
	ProductType     string `json:"productType,omitempty"`
}

func (p *Provider) handleGetPhoneNumbers(ctx context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	result, err := p.gateway.Do(ctx, http.MethodGet, "/product/phone-numbers", nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return api.ErrorResult(atoms.FormatAPIError(result)), nil
	}

	// The backend returns either a top-level array or {numbers: [...]}.
	data := atoms.Unwrap(result.Data)
	var entries []atoms.PhoneNumberEntry
	if _, isArray := data.([]interface{}); isArray {
		if err := atoms.Decode(data, &entries); err != nil {
			return api.ErrorResult(fmt.Sprintf("Failed to parse phone numbers: %v", err)), nil
		}
	} else {
		var payload struct {
			Numbers []atoms.PhoneNumberEntry `json:"numbers"`
		}
		if err := atoms.Decode(data, &payload); err != nil {
			return api.ErrorResult(fmt.Sprintf("Failed to parse phone numbers: %v", err)), nil
		}
		entries = payload.Numbers
	}

	summaries := make([]phoneNumberSummary, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		summaries = append(summaries, phoneNumberSummary{
			PhoneNumber:     entry.Number(),
			Country:         entry.CountryCode(),
			Provider:        providerOf(entry),
			AssignedAgentID: entry.AssignedAgentID(),
			IsActive:        entry.IsActive,
			ProductType:     entry.ProductType,
		})
	}

	return api.JSONResult(map[string]interface{}{
		"count":   len(summaries),
		"numbers": summaries,
	}), nil
}

func providerOf(entry *atoms.PhoneNumberEntry) string {
	if entry.Attributes != nil {
		return entry.Attributes.Provider
	}
	return ""
}

package atoms

import "encoding/json"

// Org is the organization context resolved from the API key.
type Org struct {
	OrgID  string `json:"orgId"`
	UserID string `json:"userId"`
}

// WorkflowRef accepts either a bare workflow id string or an embedded
// workflow object; some backend responses populate the agent's workflowId
// field with the full document.
type WorkflowRef string

// UnmarshalJSON implements the dual-shape decoding for WorkflowRef.
func (w *WorkflowRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*w = WorkflowRef(s)
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		*w = WorkflowRef(obj.ID)
		return nil
	}
	*w = ""
	return nil
}

// LanguageSwitching carries the detection tuning used on the creation path.
// The update path sends only IsEnabled; the remaining fields are omitted.
type LanguageSwitching struct {
	IsEnabled                            bool     `json:"isEnabled"`
	MinWordsForDetection                 *int     `json:"minWordsForDetection,omitempty"`
	StrongSignalThreshold                *float64 `json:"strongSignalThreshold,omitempty"`
	WeakSignalThreshold                  *float64 `json:"weakSignalThreshold,omitempty"`
	MinConsecutiveForWeakThresholdSwitch *int     `json:"minConsecutiveForWeakThresholdSwitch,omitempty"`
}

// LanguageConfig is an agent's language configuration.
type LanguageConfig struct {
	Default   string             `json:"default,omitempty"`
	Supported []string           `json:"supported,omitempty"`
	Switching *LanguageSwitching `json:"switching,omitempty"`
}

// SynthesizerVoiceConfig selects the TTS model and voice.
type SynthesizerVoiceConfig struct {
	Model   string `json:"model"`
	VoiceID string `json:"voiceId"`
	Gender  string `json:"gender,omitempty"`
}

// SynthesizerConfig is an agent's voice configuration.
type SynthesizerConfig struct {
	VoiceConfig *SynthesizerVoiceConfig `json:"voiceConfig,omitempty"`
	Speed       *float64                `json:"speed,omitempty"`
	Consistency *float64                `json:"consistency,omitempty"`
	Similarity  *float64                `json:"similarity,omitempty"`
	Enhancement *float64                `json:"enhancement,omitempty"`
	SampleRate  *int                    `json:"sampleRate,omitempty"`
}

// SmartTurnConfig is the smart turn detection toggle.
type SmartTurnConfig struct {
	IsEnabled      bool     `json:"isEnabled"`
	WaitTimeInSecs *float64 `json:"waitTimeInSecs,omitempty"`
}

// ToggleConfig is a bare enable/disable switch (denoising, redaction).
type ToggleConfig struct {
	IsEnabled bool `json:"isEnabled"`
}

// Agent is the backend agent entity, restricted to the fields this server
// reads. The backend owns the entity; unknown fields are ignored on decode.
type Agent struct {
	ID               string             `json:"_id"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	SLMModel         string             `json:"slmModel"`
	Synthesizer      *SynthesizerConfig `json:"synthesizer,omitempty"`
	Language         *LanguageConfig    `json:"language,omitempty"`
	AllowInboundCall *bool              `json:"allowInboundCall,omitempty"`
	Archived         *bool              `json:"archived,omitempty"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
	FirstMessage     string             `json:"firstMessage,omitempty"`
	WorkflowID       WorkflowRef        `json:"workflowId,omitempty"`
	WorkflowType     string             `json:"workflowType,omitempty"`
	BackgroundSound  string             `json:"backgroundSound,omitempty"`
	SmartTurnConfig  *SmartTurnConfig   `json:"smartTurnConfig,omitempty"`
	DenoisingConfig  *ToggleConfig      `json:"denoisingConfig,omitempty"`
	RedactionConfig  *ToggleConfig      `json:"redactionConfig,omitempty"`
	TotalCalls       *int               `json:"totalCalls,omitempty"`
	GlobalPrompt     string             `json:"globalPrompt,omitempty"`
}

// SinglePromptConfig is the prompt/tools pair on single_prompt workflows.
type SinglePromptConfig struct {
	Prompt string        `json:"prompt"`
	Tools  []interface{} `json:"tools"`
}

// Workflow is the conversation-logic entity linked to an agent.
type Workflow struct {
	ID                 string              `json:"_id"`
	Type               string              `json:"type"`
	SinglePromptConfig *SinglePromptConfig `json:"singlePromptConfig,omitempty"`
}

// CallLogEntry is one entry from GET /analytics/call-counts-log.
type CallLogEntry struct {
	CallID              string   `json:"callId"`
	CallType            string   `json:"callType"`
	CallStatus          string   `json:"callStatus"`
	CallDurationMs      *float64 `json:"callDurationMs,omitempty"`
	CostSpent           *float64 `json:"costSpent,omitempty"`
	FromNumber          string   `json:"fromNumber,omitempty"`
	ToNumber            string   `json:"toNumber,omitempty"`
	AgentName           string   `json:"agentName,omitempty"`
	CampaignName        string   `json:"campaignName,omitempty"`
	DisconnectionReason string   `json:"disconnectionReason,omitempty"`
	Timestamp           string   `json:"timestamp,omitempty"`
	RecordingURL        string   `json:"recordingUrl,omitempty"`
}

// CampaignAgentRef is the embedded agent reference on a campaign.
type CampaignAgentRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Campaign is the backend campaign entity, read-only to this server.
type Campaign struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Status      string            `json:"status"`
	Agent       *CampaignAgentRef `json:"agent,omitempty"`
	ScheduledAt string            `json:"scheduledAt,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// PhoneNumberAttributes is the nested attribute form of a phone number entry.
type PhoneNumberAttributes struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Provider    string `json:"provider,omitempty"`
	AreaCode    string `json:"areaCode,omitempty"`
}

// PhoneNumberEntry is one entry from GET /product/phone-numbers. The backend
// presents number attributes either nested under attributes or flat on the
// entry; resolution order is nested first, flat fallback second.
type PhoneNumberEntry struct {
	ID          string                 `json:"_id"`
	ProductType string                 `json:"productType,omitempty"`
	AgentID     string                 `json:"agentId,omitempty"`
	Agent       *CampaignAgentRef      `json:"agent,omitempty"`
	IsActive    *bool                  `json:"isActive,omitempty"`
	Attributes  *PhoneNumberAttributes `json:"attributes,omitempty"`

	// Flat fallback fields for the alternative response shape.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Number returns the phone number, preferring the nested attribute form.
func (p *PhoneNumberEntry) Number() string {
	if p.Attributes != nil && p.Attributes.PhoneNumber != "" {
		return p.Attributes.PhoneNumber
	}
	return p.PhoneNumber
}

// CountryCode returns the country, preferring the nested attribute form.
func (p *PhoneNumberEntry) CountryCode() string {
	if p.Attributes != nil && p.Attributes.CountryCode != "" {
		return p.Attributes.CountryCode
	}
	return p.Country
}

// AssignedAgentID returns the assigned agent, preferring the direct agentId
// over the embedded agent reference.
func (p *PhoneNumberEntry) AssignedAgentID() string {
	if p.AgentID != "" {
		return p.AgentID
	}
	if p.Agent != nil {
		return p.Agent.ID
	}
	return ""
}

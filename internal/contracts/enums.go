package contracts

// Workflow type discriminator values. The backend distinguishes exactly two
// workflow variants; anything else is a contract drift.
const (
	WorkflowTypeSinglePrompt  = "single_prompt"
	WorkflowTypeWorkflowGraph = "workflow_graph"
)

// LanguageCodes is the backend's canonical set of supported agent languages.
var LanguageCodes = []string{
	"en", "hi", "ta", "te", "kn", "ml", "mr", "gu", "bn", "pa", "es", "fr", "de",
}

// AgentModels is the backend's canonical set of agent LLM identifiers.
var AgentModels = []string{"electron", "proton", "photon"}

// SynthesizerModels is the backend's canonical set of TTS voice models.
var SynthesizerModels = []string{"waves_lightning_v2", "waves_lightning_large"}

// SynthesizerGenders is the backend's canonical voice gender set.
var SynthesizerGenders = []string{"male", "female"}

// CallStatuses is the backend's canonical call log status enumeration.
var CallStatuses = []string{
	"pending", "in_queue", "active", "completed", "failed", "no_answer", "cancelled",
}

// ToolCallStatuses is the set of call statuses the get_call_logs tool accepts
// as input. It is a superset of CallStatuses: "busy" is accepted from callers
// even though the backend enumeration does not carry it. This divergence is
// intentional and pinned by TestCallStatusDivergence.
var ToolCallStatuses = []string{
	"pending", "in_queue", "active", "completed", "failed", "no_answer", "busy", "cancelled",
}

// CallTypes is the backend's canonical call type enumeration. The tool layer
// accepts exactly this set, no divergence.
var CallTypes = []string{
	"telephony_inbound", "telephony_outbound", "webcall", "chat",
}

// CampaignStatuses is the backend's canonical campaign status enumeration.
var CampaignStatuses = []string{
	"draft", "scheduled", "running", "paused", "completed",
}

// ToolCampaignStatuses is the set of campaign statuses the get_campaigns tool
// accepts as a filter. "cancelled" is accepted from callers even though the
// backend enumeration does not carry it; intentional divergence, pinned by
// TestCampaignStatusDivergence.
var ToolCampaignStatuses = []string{
	"draft", "scheduled", "running", "paused", "completed", "cancelled",
}

// Contains reports whether value appears in set.
func Contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// Divergence returns the values present in tool-facing set but absent from
// the backend canonical set. Contract tests compare the result against the
// explicitly named exceptions so that any new divergence fails loudly.
func Divergence(toolSet, backendSet []string) []string {
	var extra []string
	for _, v := range toolSet {
		if !Contains(backendSet, v) {
			extra = append(extra, v)
		}
	}
	return extra
}

package contracts

// Contract schemas pin the exact shapes of requests this server sends to the
// Atoms main-backend and the subsets of response fields the tools read. Each
// backend endpoint keeps its own request schema because each has a different
// required/optional field set; they must not be merged.
//
// Key names in the query schemas MUST match the backend's validation schemas:
// the call log endpoint filters with dateFrom/dateTo and pages with limit,
// while the agent and campaign list endpoints page with offset. The contract
// tests pin these key sets.

// CreateAgentRequestSchema is the body the server sends to POST /agent.
// The creation path sends the full language-switching detection tuning.
var CreateAgentRequestSchema = &Schema{
	Name: "CreateAgentRequest",
	Fields: map[string]Field{
		"name":        {Type: FieldString},
		"description": {Type: FieldString},
		"language": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
			"default":   {Type: FieldString, Required: true, Enum: LanguageCodes},
			"supported": {Type: FieldArray, Required: true, Elem: &Field{Type: FieldString, Enum: LanguageCodes}},
			"switching": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
				"isEnabled":                            {Type: FieldBoolean, Required: true},
				"minWordsForDetection":                 {Type: FieldNumber, Required: true},
				"strongSignalThreshold":                {Type: FieldNumber, Required: true},
				"weakSignalThreshold":                  {Type: FieldNumber, Required: true},
				"minConsecutiveForWeakThresholdSwitch": {Type: FieldNumber, Required: true},
			})},
		})},
	},
}

// UpdateAgentConfigRequestSchema is the body shape for PATCH /agent/:id.
// Every field is optional: the tool copies only caller-supplied fields. The
// update path sends only the minimal {isEnabled} switching object, unlike the
// creation path.
var UpdateAgentConfigRequestSchema = &Schema{
	Name: "UpdateAgentConfigRequest",
	Fields: map[string]Field{
		"name":             {Type: FieldString},
		"description":      {Type: FieldString},
		"firstMessage":     {Type: FieldString},
		"allowInboundCall": {Type: FieldBoolean},
		"backgroundSound":  {Type: FieldString},
		"smartTurnConfig": {Type: FieldObject, Object: nested(map[string]Field{
			"isEnabled":      {Type: FieldBoolean, Required: true},
			"waitTimeInSecs": {Type: FieldNumber},
		})},
		"language": {Type: FieldObject, Object: nested(map[string]Field{
			"default":   {Type: FieldString, Enum: LanguageCodes},
			"supported": {Type: FieldArray, Elem: &Field{Type: FieldString, Enum: LanguageCodes}},
			"switching": {Type: FieldObject, Object: nested(map[string]Field{
				"isEnabled": {Type: FieldBoolean, Required: true},
			})},
		})},
		"synthesizer": {Type: FieldObject, Object: nested(map[string]Field{
			"voiceConfig": {Type: FieldObject, Object: nested(map[string]Field{
				"model":   {Type: FieldString, Required: true},
				"voiceId": {Type: FieldString, Required: true},
			})},
			"speed":       {Type: FieldNumber},
			"consistency": {Type: FieldNumber},
			"similarity":  {Type: FieldNumber},
		})},
		"globalPrompt": {Type: FieldString},
	},
}

// OutboundCallRequestSchema is the body the server sends to
// POST /conversation/outbound.
var OutboundCallRequestSchema = &Schema{
	Name: "OutboundCallRequest",
	Fields: map[string]Field{
		"agentId":     {Type: FieldString, Required: true},
		"phoneNumber": {Type: FieldString, Required: true},
		"fromNumber":  {Type: FieldString},
	},
}

// WorkflowPatchRequestSchema is the body the server sends to
// PATCH /workflow/:id during a prompt update. The tools array carries the
// workflow's existing tool descriptors verbatim, so elements are unrestricted.
var WorkflowPatchRequestSchema = &Schema{
	Name: "WorkflowPatchRequest",
	Fields: map[string]Field{
		"type": {Type: FieldString, Required: true, Literal: WorkflowTypeSinglePrompt},
		"singlePromptConfig": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
			"prompt": {Type: FieldString, Required: true},
			"tools":  {Type: FieldArray, Required: true},
		})},
	},
}

// CallLogsQuerySchema pins the query parameter names for
// GET /analytics/call-counts-log. This endpoint pages with limit and filters
// dates with dateFrom/dateTo.
var CallLogsQuerySchema = &Schema{
	Name: "CallLogsQuery",
	Fields: map[string]Field{
		"page":       {Type: FieldString, Required: true},
		"limit":      {Type: FieldString, Required: true},
		"agentId":    {Type: FieldString},
		"callStatus": {Type: FieldString, Enum: CallStatuses},
		"callType":   {Type: FieldString, Enum: CallTypes},
		"dateFrom":   {Type: FieldString},
		"dateTo":     {Type: FieldString},
	},
}

// AgentListQuerySchema pins the query parameter names for GET /agent, which
// pages with offset rather than limit.
var AgentListQuerySchema = &Schema{
	Name: "AgentListQuery",
	Fields: map[string]Field{
		"page":     {Type: FieldString, Required: true},
		"offset":   {Type: FieldString, Required: true},
		"search":   {Type: FieldString},
		"archived": {Type: FieldString},
	},
}

// CampaignListQuerySchema pins the query parameter names for GET /campaign,
// which pages with offset rather than limit.
var CampaignListQuerySchema = &Schema{
	Name: "CampaignListQuery",
	Fields: map[string]Field{
		"page":   {Type: FieldString, Required: true},
		"offset": {Type: FieldString, Required: true},
		"status": {Type: FieldString},
		"search": {Type: FieldString},
	},
}

// AgentResponseFieldsSchema is the subset of the GET /agent response this
// server reads. Additional backend fields are ignored, not rejected.
var AgentResponseFieldsSchema = &Schema{
	Name: "AgentResponseFields",
	Fields: map[string]Field{
		"_id":         {Type: FieldString, Required: true},
		"name":        {Type: FieldString, Required: true},
		"description": {Type: FieldString, Required: true},
		"slmModel":    {Type: FieldString, Required: true, Enum: AgentModels},
		"synthesizer": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
			"voiceConfig": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
				"model":   {Type: FieldString, Required: true, Enum: SynthesizerModels},
				"voiceId": {Type: FieldString, Required: true},
				"gender":  {Type: FieldString, Enum: SynthesizerGenders},
			})},
			"speed":       {Type: FieldNumber, Required: true},
			"consistency": {Type: FieldNumber},
			"similarity":  {Type: FieldNumber},
		})},
		"language": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
			"default":   {Type: FieldString, Required: true, Enum: LanguageCodes},
			"supported": {Type: FieldArray, Required: true, Elem: &Field{Type: FieldString, Enum: LanguageCodes}},
			"switching": {Type: FieldObject, Required: true, Object: nested(map[string]Field{
				"isEnabled": {Type: FieldBoolean, Required: true},
			})},
		})},
		"allowInboundCall": {Type: FieldBoolean, Required: true},
		"archived":         {Type: FieldBoolean},
		"createdAt":        {Type: FieldString, Required: true},
		"updatedAt":        {Type: FieldString, Required: true},
		"firstMessage":     {Type: FieldString},
		"workflowType":     {Type: FieldString, Enum: []string{WorkflowTypeSinglePrompt, WorkflowTypeWorkflowGraph}},
		// workflowId arrives either as a bare id string or as an embedded
		// workflow document.
		"workflowId":      {Type: FieldAny, Required: true},
		"backgroundSound": {Type: FieldString},
		"smartTurnConfig": {Type: FieldObject, Object: nested(map[string]Field{
			"isEnabled":      {Type: FieldBoolean, Required: true},
			"waitTimeInSecs": {Type: FieldNumber, Required: true},
		})},
		"denoisingConfig": {Type: FieldObject, Object: nested(map[string]Field{
			"isEnabled": {Type: FieldBoolean, Required: true},
		})},
		"redactionConfig": {Type: FieldObject, Object: nested(map[string]Field{
			"isEnabled": {Type: FieldBoolean, Required: true},
		})},
		"totalCalls":   {Type: FieldNumber},
		"globalPrompt": {Type: FieldString},
	},
}

// CallLogResponseFieldsSchema is the subset of call log entry fields this
// server reads from the analytics endpoint.
var CallLogResponseFieldsSchema = &Schema{
	Name: "CallLogResponseFields",
	Fields: map[string]Field{
		"callId":              {Type: FieldString, Required: true},
		"callType":            {Type: FieldString, Required: true, Enum: CallTypes},
		"callStatus":          {Type: FieldString, Required: true, Enum: CallStatuses},
		"callDurationMs":      {Type: FieldNumber},
		"costSpent":           {Type: FieldNumber},
		"fromNumber":          {Type: FieldString},
		"toNumber":            {Type: FieldString},
		"agentName":           {Type: FieldString},
		"campaignName":        {Type: FieldString},
		"disconnectionReason": {Type: FieldString},
		"timestamp":           {Type: FieldString},
		"recordingUrl":        {Type: FieldString},
	},
}

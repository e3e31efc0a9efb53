package domain

type ToolFunction struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters,omitempty"`
}

// Tool is an OpenAI-compatible function tool definition.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// AgentDescriptor is the registration data an orchestrator needs to wire
// the quantification step. Instruction is plain text, not logic.
type AgentDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Model       string `json:"model"`
	OutputKey   string `json:"output_key"`
	Instruction string `json:"instruction,omitempty"`
	Tools       []Tool `json:"tools"`
}

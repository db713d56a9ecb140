// Package agent holds the agent handle that training decorates and the
// model settings value attached to it.
package agent

import "fmt"

// DefaultModel is used when an agent is created without an explicit model.
const DefaultModel = "stub-model"

// Agent is a named model handle with mutable instructions and settings.
// Training applies to an Agent in place, so a single *Agent can accumulate
// several profiles over its lifetime.
type Agent struct {
	Name         string
	Model        string
	Instructions string
	Settings     *ModelSettings
}

// New creates an agent with the given name and instructions. An empty model
// falls back to DefaultModel.
func New(name, model, instructions string) *Agent {
	if model == "" {
		model = DefaultModel
	}
	return &Agent{
		Name:         name,
		Model:        model,
		Instructions: instructions,
	}
}

// ModelSettings carries inference parameters. Either ReasoningEffort is set
// (the richer representation), or the Temperature/MaxOutputTokens pair is.
type ModelSettings struct {
	ReasoningEffort string  `json:"reasoning_effort,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"`
}

// validEfforts is the closed set of reasoning effort levels the settings
// representation accepts.
var validEfforts = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// NewReasoningSettings builds settings carrying a named reasoning effort.
// It fails for effort levels outside the supported set; callers that need
// settings regardless fall back to a numeric pair.
func NewReasoningSettings(effort string) (*ModelSettings, error) {
	if !validEfforts[effort] {
		return nil, fmt.Errorf("unsupported reasoning effort %q", effort)
	}
	return &ModelSettings{ReasoningEffort: effort}, nil
}

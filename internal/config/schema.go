package config

// AgentsConfig represents the complete triage configuration
type AgentsConfig struct {
	DefaultModel ModelConfig        `yaml:"default_model"`
	Guardrail    AgentConfig        `yaml:"guardrail"`
	Triage       TriageConfig       `yaml:"triage"`
	Specialists  []SpecialistConfig `yaml:"specialists" validate:"required,min=1,dive"`
}

// ModelConfig holds the per-call model parameters. Zero values inherit from default_model.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens" validate:"gte=0"`
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	Retry       bool    `yaml:"retry"`
}

// AgentConfig configures the guardrail policy check
type AgentConfig struct {
	Name         string       `yaml:"name" validate:"required"`
	Instructions string       `yaml:"instructions" validate:"required"`
	Model        *ModelConfig `yaml:"model,omitempty"`
}

// TriageConfig configures specialist selection. RoutingPrompt is a
// text/template rendered with the triage instructions and the specialists.
type TriageConfig struct {
	Name          string       `yaml:"name" validate:"required"`
	Instructions  string       `yaml:"instructions" validate:"required"`
	RoutingPrompt string       `yaml:"routing_prompt"`
	Model         *ModelConfig `yaml:"model,omitempty"`
}

// SpecialistConfig describes one responder the triage agent can hand off to
type SpecialistConfig struct {
	ID           string       `yaml:"id" validate:"required"`
	DisplayName  string       `yaml:"display_name" validate:"required"`
	Description  string       `yaml:"description"`
	Instructions string       `yaml:"instructions" validate:"required"`
	Model        *ModelConfig `yaml:"model,omitempty"`
}

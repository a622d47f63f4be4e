package guardrail

import "github.com/povarna/generative-ai-agents/triage-agent/internal/llm"

// verdictSchema is the structured output requested from the policy check.
var verdictSchema = &llm.Schema{
	Name:        "homework_verdict",
	Description: "Whether the user's request is a homework or assignment question",
	Fields: []llm.Field{
		{
			Name:        "is_homework",
			Type:        llm.FieldBoolean,
			Description: "true if the request asks for help with homework or a specific assignment",
		},
		{
			Name:        "reasoning",
			Type:        llm.FieldString,
			Description: "one or two sentences explaining the decision",
		},
	},
}

// Pointers distinguish a missing field from false / empty.
type verdictResponse struct {
	IsHomework *bool   `json:"is_homework" validate:"required"`
	Reasoning  *string `json:"reasoning" validate:"required"`
}

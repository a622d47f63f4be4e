package dispatcher

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
)

type routingPromptData struct {
	Instructions string
	Specialists  []models.SpecialistDefinition
}

func renderRoutingPrompt(tmpl, instructions string, specialists []models.SpecialistDefinition) (string, error) {
	t, err := template.New("routing").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse routing prompt: %w", err)
	}

	var b strings.Builder
	if err := t.Execute(&b, routingPromptData{Instructions: instructions, Specialists: specialists}); err != nil {
		return "", fmt.Errorf("render routing prompt: %w", err)
	}

	return b.String(), nil
}

func routingSchema(specialists []models.SpecialistDefinition) *llm.Schema {
	ids := make([]string, len(specialists))
	for i, s := range specialists {
		ids[i] = s.ID
	}

	return &llm.Schema{
		Name:        "specialist_selection",
		Description: "The single specialist that should answer the user's question",
		Fields: []llm.Field{
			{
				Name:        "specialist_id",
				Type:        llm.FieldString,
				Description: "id of the chosen specialist",
				Enum:        ids,
			},
			{
				Name:        "reasoning",
				Type:        llm.FieldString,
				Description: "short explanation of the choice",
			},
		},
	}
}

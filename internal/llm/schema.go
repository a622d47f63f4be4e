package llm

import (
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldString  FieldType = "string"
	FieldBoolean FieldType = "boolean"
)

// Field is one required property of a structured output object.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Enum        []string
}

// Schema describes a flat JSON object every field of which is required.
// Providers render it in whatever form they support natively.
type Schema struct {
	Name        string
	Description string
	Fields      []Field
}

// JSONSchema renders the schema as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	required := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		prop := map[string]any{
			"type": string(f.Type),
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		properties[f.Name] = prop
		required = append(required, f.Name)
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

// PromptInstructions renders the schema as plain instructions for models
// without a native structured output mode.
func (s *Schema) PromptInstructions() string {
	var b strings.Builder

	b.WriteString("Respond ONLY in JSON with exactly these fields: {")
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf(`"%s": <%s>`, f.Name, f.Type))
	}
	b.WriteString("}\n")

	for _, f := range s.Fields {
		line := fmt.Sprintf("- %s: %s", f.Name, f.Description)
		if len(f.Enum) > 0 {
			line += fmt.Sprintf(" (one of: %s)", strings.Join(f.Enum, ", "))
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

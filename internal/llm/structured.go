package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
)

var validate = validator.New()

// DecodeStructured parses a structured completion into out and runs its
// validate tags. Any failure is reported as models.ErrSchemaViolation.
func DecodeStructured(content string, out any) error {
	cleaned := StripMarkdownCodeBlock(content)
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", models.ErrSchemaViolation)
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %w", models.ErrSchemaViolation, err)
	}

	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			missing := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				missing = append(missing, fe.Field())
			}
			return fmt.Errorf("%w: missing fields %s", models.ErrSchemaViolation, strings.Join(missing, ", "))
		}
		return fmt.Errorf("%w: %w", models.ErrSchemaViolation, err)
	}

	return nil
}

// StripMarkdownCodeBlock removes markdown code block formatting if present
func StripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	// Check for markdown code blocks (```json ... ``` or ``` ... ```)
	if strings.HasPrefix(content, "```") {
		// Find the first newline (after the opening ```)
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		// Find the closing ```
		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		// Extract the content between the code blocks
		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}

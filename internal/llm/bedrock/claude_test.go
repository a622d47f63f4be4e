package bedrock

import (
	"errors"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
)

func TestBuildPayload_FreeText(t *testing.T) {
	payload := buildPayload(llm.LLMRequest{
		Instructions: "You provide help with math problems.",
		Prompt:       "solve 2x + 5 = 11",
		MaxTokens:    512,
		Temperature:  0.3,
	})

	if payload.AnthropicVersion != anthropicVersion {
		t.Errorf("Expected version %s, got %s", anthropicVersion, payload.AnthropicVersion)
	}
	if payload.System != "You provide help with math problems." {
		t.Errorf("Unexpected system prompt: %q", payload.System)
	}
	if len(payload.Messages) != 1 || payload.Messages[0].Role != "user" || payload.Messages[0].Content != "solve 2x + 5 = 11" {
		t.Errorf("Unexpected messages: %+v", payload.Messages)
	}
	if payload.MaxTokens != 512 || payload.Temperature != 0.3 {
		t.Errorf("Unexpected params: %+v", payload)
	}
}

func TestBuildPayload_SchemaAppendedToSystem(t *testing.T) {
	payload := buildPayload(llm.LLMRequest{
		Instructions: "Check homework.",
		Prompt:       "what is life",
		Schema: &llm.Schema{
			Name: "homework_verdict",
			Fields: []llm.Field{
				{Name: "is_homework", Type: llm.FieldBoolean, Description: "homework?"},
				{Name: "reasoning", Type: llm.FieldString, Description: "why"},
			},
		},
	})

	if !strings.HasPrefix(payload.System, "Check homework.") {
		t.Errorf("Expected instructions first, got %q", payload.System)
	}
	if !strings.Contains(payload.System, `"is_homework": <boolean>`) {
		t.Errorf("Expected schema instructions in system prompt, got %q", payload.System)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"throttling", errors.New("ThrottlingException: slow down"), true},
		{"service unavailable", errors.New("ServiceUnavailableException"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"validation", errors.New("ValidationException: bad model id"), false},
		{"access denied", errors.New("AccessDeniedException"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

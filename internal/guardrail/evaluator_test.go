package guardrail

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/config"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/guardrail/mocks"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func guardrailConfig() config.AgentConfig {
	return config.AgentConfig{
		Name:         "Guardrail check",
		Instructions: "Determine if the user's request is asking for help with homework or a specific assignment.",
		Model: &config.ModelConfig{
			MaxTokens:   256,
			Temperature: 0.0,
			Retry:       true,
		},
	}
}

func TestNewEvaluator_NilModelConfig(t *testing.T) {
	cfg := guardrailConfig()
	cfg.Model = nil

	if _, err := NewEvaluator(cfg, nil, newTestLogger()); err == nil {
		t.Error("Expected error for nil model config")
	}
}

func TestNewEvaluator_MissingInstructions(t *testing.T) {
	cfg := guardrailConfig()
	cfg.Instructions = ""

	if _, err := NewEvaluator(cfg, nil, newTestLogger()); err == nil {
		t.Error("Expected error for missing instructions")
	}
}

func TestEvaluate_SendsPolicyAndSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)

	cfg := guardrailConfig()
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req llm.CompletionRequest) (*llm.LLMResponse, error) {
			if req.Instructions != cfg.Instructions {
				t.Errorf("Expected policy instructions, got %q", req.Instructions)
			}
			if req.Input != "Can you help me solve for x in the equation 2x + 5 = 11?" {
				t.Errorf("Expected user input forwarded, got %q", req.Input)
			}
			if req.Schema == nil || req.Schema.Name != "homework_verdict" {
				t.Errorf("Expected homework_verdict schema, got %+v", req.Schema)
			}
			if req.MaxTokens != 256 || !req.Retry {
				t.Errorf("Expected model config forwarded, got max_tokens=%d retry=%v", req.MaxTokens, req.Retry)
			}
			return &llm.LLMResponse{Content: `{"is_homework": true, "reasoning": "Linear equation exercise"}`}, nil
		})

	evaluator, err := NewEvaluator(cfg, completer, newTestLogger())
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}

	verdict, err := evaluator.Evaluate(context.Background(), "Can you help me solve for x in the equation 2x + 5 = 11?")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if !verdict.IsHomework {
		t.Error("Expected is_homework=true")
	}
	if verdict.Reasoning != "Linear equation exercise" {
		t.Errorf("Expected reasoning forwarded, got %q", verdict.Reasoning)
	}
}

func TestEvaluate_NotHomework(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{Content: "```json\n{\"is_homework\": false, \"reasoning\": \"Philosophical question\"}\n```"}, nil)

	evaluator, _ := NewEvaluator(guardrailConfig(), completer, newTestLogger())

	verdict, err := evaluator.Evaluate(context.Background(), "what is life")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if verdict.IsHomework {
		t.Error("Expected is_homework=false")
	}
	if verdict.Reasoning != "Philosophical question" {
		t.Errorf("Unexpected reasoning %q", verdict.Reasoning)
	}
}

func TestEvaluate_SchemaViolation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"free text", "Yes, this is homework."},
		{"missing verdict", `{"reasoning": "unsure"}`},
		{"missing reasoning", `{"is_homework": true}`},
		{"wrong type", `{"is_homework": "true", "reasoning": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := mocks.NewMockCompleter(ctrl)
			completer.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				Return(&llm.LLMResponse{Content: tt.content}, nil)

			evaluator, _ := NewEvaluator(guardrailConfig(), completer, newTestLogger())

			_, err := evaluator.Evaluate(context.Background(), "question")
			if !errors.Is(err, models.ErrSchemaViolation) {
				t.Errorf("Expected ErrSchemaViolation, got %v", err)
			}
		})
	}
}

func TestEvaluate_UpstreamErrorPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)

	upstream := fmt.Errorf("%w: guardrail: %w", models.ErrUpstream, errors.New("401 unauthorized"))
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(nil, upstream).
		Times(1)

	evaluator, _ := NewEvaluator(guardrailConfig(), completer, newTestLogger())

	_, err := evaluator.Evaluate(context.Background(), "question")
	if !errors.Is(err, models.ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got %v", err)
	}
}

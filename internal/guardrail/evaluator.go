package guardrail

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/config"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

// Completer is the slice of the completion service the evaluator needs.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.LLMResponse, error)
}

// Evaluator decides whether a request is homework by asking the model for a
// structured verdict under a fixed policy instruction.
type Evaluator struct {
	name         string
	instructions string
	modelConfig  config.ModelConfig
	completer    Completer
	logger       *zerolog.Logger
}

func NewEvaluator(cfg config.AgentConfig, completer Completer, logger *zerolog.Logger) (*Evaluator, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("guardrail %s has nil model config (should be populated by config loader)", cfg.Name)
	}
	if cfg.Instructions == "" {
		return nil, fmt.Errorf("guardrail %s has no policy instructions", cfg.Name)
	}

	return &Evaluator{
		name:         cfg.Name,
		instructions: cfg.Instructions,
		modelConfig:  *cfg.Model,
		completer:    completer,
		logger:       logger,
	}, nil
}

// Evaluate returns models.ErrUpstream when the call fails and
// models.ErrSchemaViolation when the reply is not a valid verdict.
// Neither is retried or defaulted here.
func (e *Evaluator) Evaluate(ctx context.Context, userInput string) (models.GuardrailVerdict, error) {
	now := time.Now()

	resp, err := e.completer.Complete(ctx, llm.CompletionRequest{
		Caller:       "guardrail",
		Instructions: e.instructions,
		Input:        userInput,
		Schema:       verdictSchema,
		MaxTokens:    e.modelConfig.MaxTokens,
		Temperature:  e.modelConfig.Temperature,
		Retry:        e.modelConfig.Retry,
	})
	if err != nil {
		return models.GuardrailVerdict{}, err
	}

	var parsed verdictResponse
	if err := llm.DecodeStructured(resp.Content, &parsed); err != nil {
		e.logger.Error().
			Err(err).
			Str("guardrail", e.name).
			Str("content", resp.Content).
			Msg("failed to parse guardrail verdict")
		return models.GuardrailVerdict{}, fmt.Errorf("guardrail verdict: %w", err)
	}

	verdict := models.GuardrailVerdict{
		IsHomework: *parsed.IsHomework,
		Reasoning:  *parsed.Reasoning,
	}

	e.logger.Info().
		Str("guardrail", e.name).
		Bool("is_homework", verdict.IsHomework).
		Dur("duration", time.Since(now)).
		Msg("guardrail completed")

	return verdict, nil
}

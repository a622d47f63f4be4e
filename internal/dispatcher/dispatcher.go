package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/config"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

// GuardrailEvaluator decides whether a request may be answered at all
type GuardrailEvaluator interface {
	Evaluate(ctx context.Context, userInput string) (models.GuardrailVerdict, error)
}

// SpecialistRegistry is the read-only view of the specialists triage can route to
type SpecialistRegistry interface {
	Get(id string) (models.SpecialistDefinition, error)
	List() []models.SpecialistDefinition
	ModelFor(id string) (config.ModelConfig, bool)
}

// Completer issues routing and specialist calls
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.LLMResponse, error)
}

type Dispatcher struct {
	name                string
	routingInstructions string
	routingSchema       *llm.Schema
	triageModel         config.ModelConfig
	guardrail           GuardrailEvaluator
	registry            SpecialistRegistry
	completer           Completer
	logger              *zerolog.Logger
}

// NewDispatcher renders the routing prompt once. The registry is fixed after
// construction so the prompt and the id enum never change.
func NewDispatcher(
	cfg config.TriageConfig,
	guardrail GuardrailEvaluator,
	registry SpecialistRegistry,
	completer Completer,
	logger *zerolog.Logger,
) (*Dispatcher, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("triage %s has nil model config (should be populated by config loader)", cfg.Name)
	}

	specialists := registry.List()
	if len(specialists) == 0 {
		return nil, fmt.Errorf("triage %s has no specialists to route to", cfg.Name)
	}

	prompt := cfg.RoutingPrompt
	if strings.TrimSpace(prompt) == "" {
		prompt = config.DefaultRoutingPrompt
	}

	instructions, err := renderRoutingPrompt(prompt, cfg.Instructions, specialists)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		name:                cfg.Name,
		routingInstructions: instructions,
		routingSchema:       routingSchema(specialists),
		triageModel:         *cfg.Model,
		guardrail:           guardrail,
		registry:            registry,
		completer:           completer,
		logger:              logger,
	}, nil
}

// Dispatch runs one request through guardrail, routing and the chosen
// specialist. A negative verdict is a Blocked result, not an error.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.DispatchRequest) (models.DispatchResult, error) {
	now := time.Now()
	id := req.RequestID

	if strings.TrimSpace(req.UserInput) == "" {
		return models.DispatchResult{}, models.ErrEmptyInput
	}

	d.logger.Info().Str("requestID", id).Msg("starting dispatch")

	verdict, err := d.guardrail.Evaluate(ctx, req.UserInput)
	if err != nil {
		return models.DispatchResult{}, err
	}

	if !verdict.IsHomework {
		d.logger.Info().
			Str("requestID", id).
			Str("reason", verdict.Reasoning).
			Msg("guardrail tripwire triggered")
		return models.Blocked(verdict.Reasoning), nil
	}

	specialist, err := d.route(ctx, id, req.UserInput)
	if err != nil {
		return models.DispatchResult{}, err
	}

	modelCfg, ok := d.registry.ModelFor(specialist.ID)
	if !ok {
		modelCfg = d.triageModel
	}

	resp, err := d.completer.Complete(ctx, llm.CompletionRequest{
		Caller:       "specialist:" + specialist.ID,
		Instructions: specialist.Instructions,
		Input:        req.UserInput,
		MaxTokens:    modelCfg.MaxTokens,
		Temperature:  modelCfg.Temperature,
		Retry:        modelCfg.Retry,
	})
	if err != nil {
		return models.DispatchResult{}, err
	}

	d.logger.Info().
		Str("requestID", id).
		Str("specialist", specialist.ID).
		Dur("duration", time.Since(now)).
		Msg("dispatch complete")

	return models.Completed(specialist.ID, resp.Content), nil
}

func (d *Dispatcher) route(ctx context.Context, id, userInput string) (models.SpecialistDefinition, error) {
	resp, err := d.completer.Complete(ctx, llm.CompletionRequest{
		Caller:       "triage",
		Instructions: d.routingInstructions,
		Input:        userInput,
		Schema:       d.routingSchema,
		MaxTokens:    d.triageModel.MaxTokens,
		Temperature:  d.triageModel.Temperature,
		Retry:        d.triageModel.Retry,
	})
	if err != nil {
		return models.SpecialistDefinition{}, err
	}

	// No required tags on RoutingDecision: an empty id is ambiguity, not a schema violation.
	var decision models.RoutingDecision
	if err := llm.DecodeStructured(resp.Content, &decision); err != nil {
		d.logger.Error().
			Err(err).
			Str("requestID", id).
			Str("content", resp.Content).
			Msg("failed to parse routing decision")
		return models.SpecialistDefinition{}, fmt.Errorf("routing decision: %w", err)
	}

	chosen := strings.TrimSpace(decision.SpecialistID)
	if chosen == "" {
		return models.SpecialistDefinition{}, fmt.Errorf("%w: no specialist selected", models.ErrRoutingAmbiguity)
	}

	specialist, err := d.registry.Get(chosen)
	if err != nil {
		return models.SpecialistDefinition{}, fmt.Errorf("%w: %w", models.ErrRoutingAmbiguity, err)
	}

	d.logger.Info().
		Str("requestID", id).
		Str("triage", d.name).
		Str("specialist", specialist.ID).
		Str("reasoning", decision.Reasoning).
		Msg("handoff selected")

	return specialist, nil
}

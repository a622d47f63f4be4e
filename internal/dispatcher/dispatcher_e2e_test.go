package dispatcher

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/config"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/guardrail"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/registry"
)

// cannedClient answers by call kind: the guardrail and routing calls are
// recognised by their schema, specialist calls by their instructions.
type cannedClient struct {
	homework map[string]bool
	route    string
	calls    []string
}

func (c *cannedClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.respond(request)
}

func (c *cannedClient) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.respond(request)
}

func (c *cannedClient) respond(request llm.LLMRequest) (*llm.LLMResponse, error) {
	switch {
	case request.Schema != nil && request.Schema.Name == "homework_verdict":
		c.calls = append(c.calls, "guardrail")
		if c.homework[request.Prompt] {
			return &llm.LLMResponse{Content: `{"is_homework": true, "reasoning": "Asks about a historical fact"}`}, nil
		}
		return &llm.LLMResponse{Content: `{"is_homework": false, "reasoning": "This is a philosophical question, not homework"}`}, nil
	case request.Schema != nil:
		c.calls = append(c.calls, "triage")
		return &llm.LLMResponse{Content: `{"specialist_id": "` + c.route + `", "reasoning": "history question"}`}, nil
	case strings.Contains(request.Instructions, "historical"):
		c.calls = append(c.calls, "history")
		return &llm.LLMResponse{Content: "George Washington was the first president of the United States.", StopReason: "end_turn"}, nil
	default:
		c.calls = append(c.calls, "other")
		return &llm.LLMResponse{Content: "unexpected"}, nil
	}
}

func newEndToEndDispatcher(t *testing.T, client llm.LLMClient) *Dispatcher {
	t.Helper()
	logger := newTestLogger()

	cfg, err := config.LoadAgentsConfig("../../configs/agents.yaml")
	if err != nil {
		t.Fatalf("LoadAgentsConfig failed: %v", err)
	}

	reg, err := registry.NewFromConfig(cfg, logger)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	completion := llm.NewCompletionService(client, time.Second, logger)

	evaluator, err := guardrail.NewEvaluator(cfg.Guardrail, completion, logger)
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}

	d, err := NewDispatcher(cfg.Triage, evaluator, reg, completion, logger)
	if err != nil {
		t.Fatalf("NewDispatcher failed: %v", err)
	}

	return d
}

func TestEndToEnd_HistoryQuestion(t *testing.T) {
	query := "who was the first president of the united states?"
	client := &cannedClient{homework: map[string]bool{query: true}, route: "history"}
	d := newEndToEndDispatcher(t, client)

	result, err := d.Dispatch(context.Background(), models.DispatchRequest{UserInput: query})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	want := models.Completed("history", "George Washington was the first president of the United States.")
	if result != want {
		t.Errorf("Expected %+v, got %+v", want, result)
	}

	if strings.Join(client.calls, ",") != "guardrail,triage,history" {
		t.Errorf("Unexpected call sequence %v", client.calls)
	}
}

func TestEndToEnd_WhatIsLife(t *testing.T) {
	client := &cannedClient{route: "history"}
	d := newEndToEndDispatcher(t, client)

	result, err := d.Dispatch(context.Background(), models.DispatchRequest{UserInput: "what is life"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	want := models.Blocked("This is a philosophical question, not homework")
	if result != want {
		t.Errorf("Expected %+v, got %+v", want, result)
	}

	if len(client.calls) != 1 || client.calls[0] != "guardrail" {
		t.Errorf("Expected only the guardrail call, got %v", client.calls)
	}
}

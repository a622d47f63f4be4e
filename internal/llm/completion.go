package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
)

const DefaultTimeout = 30 * time.Second

// CompletionRequest is one call to the completion service. All model
// parameters travel with the request; nothing is inherited from a parent call.
type CompletionRequest struct {
	Caller       string
	Instructions string
	Input        string
	Schema       *Schema
	MaxTokens    int
	Temperature  float64
	Retry        bool
}

// CompletionService bounds every provider call with a timeout and folds
// provider failures into models.ErrUpstream.
type CompletionService struct {
	client  LLMClient
	timeout time.Duration
	logger  *zerolog.Logger
}

func NewCompletionService(client LLMClient, timeout time.Duration, logger *zerolog.Logger) *CompletionService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &CompletionService{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *CompletionService) Complete(ctx context.Context, req CompletionRequest) (*LLMResponse, error) {
	now := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	llmRequest := LLMRequest{
		Instructions: req.Instructions,
		Prompt:       req.Input,
		Schema:       req.Schema,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
	}

	var resp *LLMResponse
	var err error
	if req.Retry {
		resp, err = s.client.InvokeModelWithRetry(callCtx, llmRequest)
	} else {
		resp, err = s.client.InvokeModel(callCtx, llmRequest)
	}

	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			err = fmt.Errorf("completion timed out after %s: %w", s.timeout, err)
		}
		s.logger.Error().
			Err(err).
			Str("caller", req.Caller).
			Dur("duration", time.Since(now)).
			Msg("completion call failed")
		return nil, fmt.Errorf("%w: %s: %w", models.ErrUpstream, req.Caller, err)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: %s: empty response", models.ErrUpstream, req.Caller)
	}

	s.logger.Debug().
		Str("caller", req.Caller).
		Str("stop_reason", resp.StopReason).
		Bool("structured", req.Schema != nil).
		Dur("duration", time.Since(now)).
		Msg("completion call finished")

	return resp, nil
}

package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"google.golang.org/genai"
)

func buildConfig(request llm.LLMRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(request.Temperature)),
	}

	if request.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(request.MaxTokens)
	}

	if request.Instructions != "" {
		cfg.SystemInstruction = genai.NewContentFromText(request.Instructions, genai.RoleUser)
	}

	if request.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenAISchema(request.Schema)
	}

	return cfg
}

func toGenAISchema(schema *llm.Schema) *genai.Schema {
	out := &genai.Schema{
		Type:        genai.TypeObject,
		Description: schema.Description,
		Properties:  make(map[string]*genai.Schema, len(schema.Fields)),
	}

	for _, f := range schema.Fields {
		prop := &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
			Enum:        f.Enum,
		}
		if f.Type == llm.FieldBoolean {
			prop.Type = genai.TypeBoolean
		}
		if len(f.Enum) > 0 {
			prop.Format = "enum"
		}

		out.Properties[f.Name] = prop
		out.Required = append(out.Required, f.Name)
		out.PropertyOrdering = append(out.PropertyOrdering, f.Name)
	}

	return out
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	output, err := c.Client.Models.GenerateContent(ctx, c.ModelID, genai.Text(request.Prompt), buildConfig(request))
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gemini model. Error: %w", err)
	}

	if len(output.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	return &llm.LLMResponse{
		Content:    output.Text(),
		StopReason: string(output.Candidates[0].FinishReason),
	}, nil
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	policy := llm.RetryPolicy{
		MaxRetries:   c.MaxRetries,
		InitialDelay: c.InitialDelay,
		MaxDelay:     c.MaxDelay,
		Retryable:    isRetryableError,
	}

	return llm.InvokeWithRetry(ctx, policy, func(ctx context.Context) (*llm.LLMResponse, error) {
		return c.InvokeModel(ctx, request)
	})
}

// Rate limits and server side failures are retried, everything else is final.
func isRetryableError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Code >= http.StatusInternalServerError
	}

	return false
}

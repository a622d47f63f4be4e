package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// Client talks to the Gemini API through Google's genai SDK.
type Client struct {
	Client       *genai.Client
	ModelID      string
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		Client:       client,
		ModelID:      model,
		MaxRetries:   3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     12 * time.Second,
	}, nil
}

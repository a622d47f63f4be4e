package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/config"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/dispatcher"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/guardrail"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/registry"
	"github.com/rs/zerolog"
)

const (
	ProviderGemini       = "gemini"
	ProviderGeminiCompat = "gemini-openai"
	ProviderOpenAI       = "openai"
	ProviderBedrock      = "bedrock"
)

type Config struct {
	Provider         string
	GeminiAPIKey     string
	GeminiModelID    string
	OpenAIKey        string
	OpenAIModelID    string
	OpenAIBaseURL    string
	AWSRegion        string
	ClaudeModelID    string
	LLMTimeout       time.Duration
	AgentsConfigPath string
	LogLevel         string

	// malformed environment values found by LoadConfig
	envErrors []error
}

type Dependencies struct {
	Dispatcher *dispatcher.Dispatcher
	Registry   *registry.Registry
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	cfg := &Config{
		Provider:         strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:    getEnv("GEMINI_MODEL_ID", gemini.DefaultModel),
		OpenAIKey:        getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:    getEnv("OPEN_AI_MODEL_ID", ""),
		OpenAIBaseURL:    getEnv("OPEN_AI_BASE_URL", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:    getEnv("CLAUDE_MODEL_ID", ""),
		AgentsConfigPath: getEnv("AGENTS_CONFIG_PATH", config.DefaultConfigPath),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	timeout, err := getEnvDuration("LLM_TIMEOUT", llm.DefaultTimeout)
	if err != nil {
		cfg.envErrors = append(cfg.envErrors, err)
	}
	cfg.LLMTimeout = timeout

	return cfg
}

// Validate checks that the selected provider has its credential. Every
// failure wraps models.ErrConfiguration.
func (c *Config) Validate() error {
	if len(c.envErrors) > 0 {
		return fmt.Errorf("%w: %w", models.ErrConfiguration, errors.Join(c.envErrors...))
	}

	switch c.Provider {
	case ProviderGemini, ProviderGeminiCompat:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY is not set", models.ErrConfiguration)
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("%w: OPEN_AI_KEY is not set", models.ErrConfiguration)
		}
		if c.OpenAIModelID == "" {
			return fmt.Errorf("%w: OPEN_AI_MODEL_ID is not set", models.ErrConfiguration)
		}
	case ProviderBedrock:
		if c.ClaudeModelID == "" {
			return fmt.Errorf("%w: CLAUDE_MODEL_ID is not set", models.ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown LLM provider %q", models.ErrConfiguration, c.Provider)
	}

	if c.LLMTimeout <= 0 {
		return fmt.Errorf("%w: LLM_TIMEOUT must be positive", models.ErrConfiguration)
	}

	return nil
}

// Wire validates configuration and builds the dispatcher. It makes no
// completion calls, so configuration errors surface before any request.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	agentsConfig, err := config.LoadAgentsConfig(cfg.AgentsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load agents config: %w", models.ErrConfiguration, err)
	}

	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create %s client: %w", models.ErrConfiguration, cfg.Provider, err)
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Dur("timeout", cfg.LLMTimeout).
		Msg("LLM client created")

	return buildDependencies(agentsConfig, llmClient, cfg.LLMTimeout, logger)
}

func buildDependencies(agentsConfig *config.AgentsConfig, llmClient llm.LLMClient, timeout time.Duration, logger *zerolog.Logger) (*Dependencies, error) {
	completion := llm.NewCompletionService(llmClient, timeout, logger)

	reg, err := registry.NewFromConfig(agentsConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build specialist registry: %w", models.ErrConfiguration, err)
	}

	evaluator, err := guardrail.NewEvaluator(agentsConfig.Guardrail, completion, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build guardrail: %w", models.ErrConfiguration, err)
	}

	disp, err := dispatcher.NewDispatcher(agentsConfig.Triage, evaluator, reg, completion, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build dispatcher: %w", models.ErrConfiguration, err)
	}

	return &Dependencies{
		Dispatcher: disp,
		Registry:   reg,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

// getEnvDuration falls back to defaultValue only when key is unset.
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue, fmt.Errorf("%s=%q is not a duration (e.g. 30s): %w", key, raw, err)
	}

	return value, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
	case ProviderGeminiCompat:
		return gpt.NewClient(cfg.GeminiAPIKey, cfg.GeminiModelID, gpt.GeminiCompatibleBaseURL)
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID, cfg.OpenAIBaseURL)
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

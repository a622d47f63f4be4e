package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "configs/agents.yaml"
	defaultMaxTokens  = 1024
)

// DefaultRoutingPrompt is used when triage.routing_prompt is empty.
const DefaultRoutingPrompt = `{{.Instructions}}

Available specialists:
{{range .Specialists}}- {{.ID}}: {{.DisplayName}}. {{.Description}}
{{end}}
Select exactly one specialist id from the list above for the user's question.`

var validate = validator.New()

// LoadAgentsConfig reads the YAML file at path. An empty path falls back to
// AGENTS_CONFIG_PATH and then to configs/agents.yaml.
func LoadAgentsConfig(path string) (*AgentsConfig, error) {
	if path == "" {
		path = os.Getenv("AGENTS_CONFIG_PATH")
	}
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg AgentsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *AgentsConfig) {
	if cfg.DefaultModel.MaxTokens == 0 {
		cfg.DefaultModel.MaxTokens = defaultMaxTokens
	}

	if strings.TrimSpace(cfg.Triage.RoutingPrompt) == "" {
		cfg.Triage.RoutingPrompt = DefaultRoutingPrompt
	}

	cfg.Guardrail.Model = mergeModel(cfg.DefaultModel, cfg.Guardrail.Model)
	cfg.Triage.Model = mergeModel(cfg.DefaultModel, cfg.Triage.Model)
	for i := range cfg.Specialists {
		cfg.Specialists[i].Model = mergeModel(cfg.DefaultModel, cfg.Specialists[i].Model)
	}
}

// mergeModel fills zero fields of override from defaults. Retry is only
// inherited when no override block is given at all.
func mergeModel(defaults ModelConfig, override *ModelConfig) *ModelConfig {
	if override == nil {
		merged := defaults
		return &merged
	}

	merged := *override
	if merged.MaxTokens == 0 {
		merged.MaxTokens = defaults.MaxTokens
	}
	if merged.Temperature == 0 {
		merged.Temperature = defaults.Temperature
	}
	return &merged
}

func (c *AgentsConfig) Validate() error {
	if len(c.Specialists) == 0 {
		return fmt.Errorf("no specialists configured")
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid agents config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid agents config: %w", err)
	}

	seen := make(map[string]bool, len(c.Specialists))
	for _, s := range c.Specialists {
		if seen[s.ID] {
			return fmt.Errorf("duplicate specialist id: %s", s.ID)
		}
		seen[s.ID] = true
	}

	if _, err := template.New("routing").Parse(c.Triage.RoutingPrompt); err != nil {
		return fmt.Errorf("invalid routing prompt template: %w", err)
	}

	return nil
}

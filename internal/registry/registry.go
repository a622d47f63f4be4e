package registry

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/config"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
)

// Registry is the fixed, read-only set of specialists reachable from triage.
type Registry struct {
	ordered []models.SpecialistDefinition
	byID    map[string]int
	params  map[string]config.ModelConfig
}

// New builds a registry in the given order. Empty or duplicate ids are rejected.
func New(specialists []models.SpecialistDefinition) (*Registry, error) {
	r := &Registry{
		ordered: make([]models.SpecialistDefinition, 0, len(specialists)),
		byID:    make(map[string]int, len(specialists)),
		params:  make(map[string]config.ModelConfig, len(specialists)),
	}

	for _, s := range specialists {
		if s.ID == "" {
			return nil, fmt.Errorf("specialist %q has empty id", s.DisplayName)
		}
		if _, exists := r.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate specialist id: %s", s.ID)
		}

		r.byID[s.ID] = len(r.ordered)
		r.ordered = append(r.ordered, s)
	}

	if len(r.ordered) == 0 {
		return nil, fmt.Errorf("no specialists registered")
	}

	return r, nil
}

// NewFromConfig builds the registry from the specialists section of the agents config.
func NewFromConfig(cfg *config.AgentsConfig, logger *zerolog.Logger) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("agents config is nil")
	}

	definitions := make([]models.SpecialistDefinition, 0, len(cfg.Specialists))
	for _, s := range cfg.Specialists {
		definitions = append(definitions, models.SpecialistDefinition{
			ID:           s.ID,
			DisplayName:  s.DisplayName,
			Description:  s.Description,
			Instructions: s.Instructions,
		})
	}

	r, err := New(definitions)
	if err != nil {
		return nil, err
	}

	for _, s := range cfg.Specialists {
		if s.Model != nil {
			r.params[s.ID] = *s.Model
		}

		logger.Info().
			Str("specialist", s.ID).
			Str("name", s.DisplayName).
			Msg("specialist registered")
	}

	logger.Info().
		Int("total_specialists", len(r.ordered)).
		Msg("specialist registry built successfully")

	return r, nil
}

func (r *Registry) Get(id string) (models.SpecialistDefinition, error) {
	idx, exists := r.byID[id]
	if !exists {
		return models.SpecialistDefinition{}, fmt.Errorf("%w: %q", models.ErrUnknownSpecialist, id)
	}

	return r.ordered[idx], nil
}

// List returns the specialists in registration order. The slice is a copy.
func (r *Registry) List() []models.SpecialistDefinition {
	out := make([]models.SpecialistDefinition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IDs returns the specialist ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ordered))
	for i, s := range r.ordered {
		ids[i] = s.ID
	}
	return ids
}

// ModelFor returns the model parameters configured for a specialist, if any.
func (r *Registry) ModelFor(id string) (config.ModelConfig, bool) {
	m, ok := r.params[id]
	return m, ok
}

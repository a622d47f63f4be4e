package llm

// LLMRequest carries everything a provider needs for one call.
// Instructions go to the system role, Prompt to the user role.
// A nil Schema asks for free text.
type LLMRequest struct {
	Instructions string
	Prompt       string
	Schema       *Schema
	MaxTokens    int
	Temperature  float64
}

type LLMResponse struct {
	Content    string
	StopReason string
}

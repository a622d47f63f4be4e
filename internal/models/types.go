package models

type Status string

const (
	StatusBlocked   Status = "blocked"
	StatusCompleted Status = "completed"
)

// GuardrailVerdict is the structured output of the homework policy check.
type GuardrailVerdict struct {
	IsHomework bool   `json:"is_homework"`
	Reasoning  string `json:"reasoning"`
}

// SpecialistDefinition describes one responder reachable from triage.
type SpecialistDefinition struct {
	ID           string `json:"id" yaml:"id"`
	DisplayName  string `json:"display_name" yaml:"display_name"`
	Description  string `json:"description" yaml:"description"`
	Instructions string `json:"instructions" yaml:"instructions"`
}

// RoutingDecision is the structured output of the triage selection call.
type RoutingDecision struct {
	SpecialistID string `json:"specialist_id"`
	Reasoning    string `json:"reasoning"`
}

type DispatchRequest struct {
	RequestID string `json:"request_id,omitempty"`
	UserInput string `json:"user_input"`
}

// DispatchResult is the terminal outcome of one request.
// BlockReason is set only when blocked, ChosenSpecialistID and ResponseText only when completed.
type DispatchResult struct {
	Status             Status `json:"status"`
	BlockReason        string `json:"block_reason,omitempty"`
	ChosenSpecialistID string `json:"chosen_specialist_id,omitempty"`
	ResponseText       string `json:"response_text,omitempty"`
}

func Blocked(reason string) DispatchResult {
	return DispatchResult{Status: StatusBlocked, BlockReason: reason}
}

func Completed(specialistID string, response string) DispatchResult {
	return DispatchResult{Status: StatusCompleted, ChosenSpecialistID: specialistID, ResponseText: response}
}

// Outcome pairs a query with either its result or the error that stopped it.
type Outcome struct {
	RequestID string
	Query     string
	Result    *DispatchResult
	Err       error
}

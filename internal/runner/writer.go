package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// Writer renders outcomes as a human readable report or as JSON lines.
type Writer struct {
	output io.Writer
	format string
	names  map[string]string
	logger *zerolog.Logger
}

type jsonlRecord struct {
	RequestID string                 `json:"request_id"`
	Query     string                 `json:"query"`
	Result    *models.DispatchResult `json:"result,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatText, FormatJSONL:
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: %s, %s)", format, FormatText, FormatJSONL)
	}

	return &Writer{
		output: output,
		format: format,
		logger: logger,
	}, nil
}

// WithSpecialists lets the text report name the handoff by display name.
// Unknown ids are printed as is.
func (w *Writer) WithSpecialists(specialists []models.SpecialistDefinition) *Writer {
	w.names = make(map[string]string, len(specialists))
	for _, s := range specialists {
		if s.DisplayName != "" {
			w.names[s.ID] = s.DisplayName
		}
	}
	return w
}

func (w *Writer) WriteAll(outcomes []models.Outcome) error {
	for _, o := range outcomes {
		if err := w.Write(o); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Write(o models.Outcome) error {
	var err error
	if w.format == FormatJSONL {
		err = w.writeJSONL(o)
	} else {
		err = w.writeText(o)
	}

	if err != nil {
		w.logger.Error().Err(err).Str("requestID", o.RequestID).Msg("failed to write outcome")
		return fmt.Errorf("write outcome %s: %w", o.RequestID, err)
	}
	return nil
}

func (w *Writer) writeJSONL(o models.Outcome) error {
	record := jsonlRecord{
		RequestID: o.RequestID,
		Query:     o.Query,
		Result:    o.Result,
	}
	if o.Err != nil {
		record.Error = o.Err.Error()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w.output, "%s\n", data)
	return err
}

func (w *Writer) writeText(o models.Outcome) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %s\n", o.Query)
	switch {
	case o.Err != nil || o.Result == nil:
		fmt.Fprintf(&b, "Error: %v\n", o.Err)
		b.WriteString("Handoff Used: None\n")
	case o.Result.Status == models.StatusBlocked:
		fmt.Fprintf(&b, "Guardrail Blocked: %s\n", o.Result.BlockReason)
		b.WriteString("Handoff Used: None\n")
	default:
		fmt.Fprintf(&b, "Final Output: %s\n", strings.TrimSpace(o.Result.ResponseText))
		fmt.Fprintf(&b, "Handoff Used: %s\n", w.handoffName(o.Result.ChosenSpecialistID))
	}
	b.WriteString(strings.Repeat("-", 20) + "\n")

	_, err := io.WriteString(w.output, b.String())
	return err
}

func (w *Writer) handoffName(id string) string {
	if name, ok := w.names[id]; ok {
		return name
	}
	return id
}

// WriteSummary prints the batch counts in the writer's format.
func (w *Writer) WriteSummary(s Summary) error {
	if w.format == FormatJSONL {
		data, err := json.Marshal(struct {
			Summary Summary `json:"summary"`
		}{s})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w.output, "%s\n", data)
		return err
	}

	_, err := fmt.Fprintf(w.output, "Total: %d  Completed: %d  Blocked: %d  Failed: %d\n",
		s.Total, s.Completed, s.Blocked, s.Failed)
	return err
}

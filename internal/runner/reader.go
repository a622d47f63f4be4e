package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
)

const maxLineSize = 1024 * 1024

// InputRecord is one parsed line of the input. Error is set when the line
// could not be turned into a query.
type InputRecord struct {
	LineNumber int
	Query      string
	Error      error
}

type jsonQuery struct {
	Query string `json:"query"`
}

// Reader reads queries one per line. A line starting with '{' is parsed as
// {"query": "..."}; anything else is the query itself. Blank lines and lines
// starting with '#' are skipped.
type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records until the input ends or ctx is done.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			record := parseLine(lineNumber, line)

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Warn().Int("line", lineNumber).Msg("input reading cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func parseLine(lineNumber int, line string) InputRecord {
	record := InputRecord{LineNumber: lineNumber}

	if !strings.HasPrefix(line, "{") {
		record.Query = line
		return record
	}

	var q jsonQuery
	if err := json.Unmarshal([]byte(line), &q); err != nil {
		record.Error = fmt.Errorf("line %d: invalid JSON: %w", lineNumber, err)
		return record
	}

	record.Query = strings.TrimSpace(q.Query)
	if record.Query == "" {
		record.Error = fmt.Errorf("line %d: %w", lineNumber, models.ErrEmptyInput)
	}

	return record
}

// ReadQueries collects every query from input. The first malformed line
// aborts the read; an input without queries is models.ErrEmptyInput.
func ReadQueries(ctx context.Context, input io.Reader, logger *zerolog.Logger) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var queries []string
	for record := range NewReader(input, logger).ReadAll(ctx) {
		if record.Error != nil {
			return nil, record.Error
		}
		queries = append(queries, record.Query)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(queries) == 0 {
		return nil, models.ErrEmptyInput
	}

	return queries, nil
}

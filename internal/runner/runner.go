package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// Dispatcher handles a single request end to end
type Dispatcher interface {
	Dispatch(ctx context.Context, req models.DispatchRequest) (models.DispatchResult, error)
}

// Runner drives a batch of independent queries through the dispatcher.
// Per-query errors are recorded in the outcome and never stop the batch.
type Runner struct {
	dispatcher Dispatcher
	workers    int
	logger     *zerolog.Logger
}

func NewRunner(dispatcher Dispatcher, workers int, logger *zerolog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}

	return &Runner{
		dispatcher: dispatcher,
		workers:    workers,
		logger:     logger,
	}
}

// Run returns one outcome per query, in input order. Once ctx is done the
// remaining queries are not sent and carry ctx.Err().
func (r *Runner) Run(ctx context.Context, queries []string) []models.Outcome {
	startTime := time.Now()
	outcomes := make([]models.Outcome, len(queries))

	if r.workers == 1 {
		for i, query := range queries {
			outcomes[i] = r.runOne(ctx, query)
		}
	} else {
		g := new(errgroup.Group)
		g.SetLimit(r.workers)

		for i, query := range queries {
			g.Go(func() error {
				// each goroutine owns its slot
				outcomes[i] = r.runOne(ctx, query)
				return nil
			})
		}

		_ = g.Wait()
	}

	summary := Summarize(outcomes)
	r.logger.Info().
		Int("total", summary.Total).
		Int("completed", summary.Completed).
		Int("blocked", summary.Blocked).
		Int("failed", summary.Failed).
		Int("workers", r.workers).
		Dur("duration", time.Since(startTime)).
		Msg("batch complete")

	return outcomes
}

func (r *Runner) runOne(ctx context.Context, query string) models.Outcome {
	outcome := models.Outcome{
		RequestID: uuid.NewString(),
		Query:     query,
	}

	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome
	}

	result, err := r.dispatcher.Dispatch(ctx, models.DispatchRequest{
		RequestID: outcome.RequestID,
		UserInput: query,
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("requestID", outcome.RequestID).
			Msg("dispatch failed")
		outcome.Err = err
		return outcome
	}

	outcome.Result = &result
	return outcome
}

// Summary counts outcomes by terminal state.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Blocked   int `json:"blocked"`
	Failed    int `json:"failed"`
}

func Summarize(outcomes []models.Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Err != nil || o.Result == nil:
			s.Failed++
		case o.Result.Status == models.StatusBlocked:
			s.Blocked++
		default:
			s.Completed++
		}
	}
	return s
}

package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/models"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/runner"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/triage-agent/internal/setup/logger"
	"github.com/rs/zerolog"
)

var defaultQueries = []string{
	"who was the first president of the united states?",
	"what is life",
	"Can you help me solve for x in the equation 2x + 5 = 11?",
}

func main() {
	startTime := time.Now()

	input := flag.String("input", "", "Queries file, one per line or JSONL {\"query\": ...}. Use '-' for stdin. Defaults to the built-in examples")
	format := flag.String("format", runner.FormatText, "Report format. Supported formats: 'text', 'jsonl'")
	workers := flag.Int("workers", 1, "Concurrent dispatch workers. 1 keeps the batch sequential")
	configPath := flag.String("config", "", "Agents config path (overrides AGENTS_CONFIG_PATH)")
	summary := flag.Bool("summary", false, "Append completed/blocked/failed counts to the report")

	flag.Parse()

	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	if *configPath != "" {
		cfg.AgentsConfigPath = *configPath
	}

	log := logger.New(cfg.LogLevel, true)
	if envErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	writer, err := runner.NewWriter(os.Stdout, *format, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid format")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		if errors.Is(err, models.ErrConfiguration) {
			log.Fatal().Err(err).Msg("Configuration error, no requests were sent")
		}
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	writer.WithSpecialists(deps.Registry.List())

	queries, err := loadQueries(ctx, *input, &log)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("Failed to read queries")
	}

	log.Info().Int("total", len(queries)).Int("workers", *workers).Msg("Dispatching queries")

	outcomes := runner.NewRunner(deps.Dispatcher, *workers, deps.Logger).Run(ctx, queries)

	if err := writer.WriteAll(outcomes); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}

	if *summary {
		if err := writer.WriteSummary(runner.Summarize(outcomes)); err != nil {
			log.Fatal().Err(err).Msg("Failed to write summary")
		}
	}

	log.Info().Dur("duration", time.Since(startTime)).Msg("Processing complete")
}

func loadQueries(ctx context.Context, input string, log *zerolog.Logger) ([]string, error) {
	if input == "" {
		return defaultQueries, nil
	}

	var inputFile io.Reader
	if input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", input).Msg("Reading input file")
	}

	return runner.ReadQueries(ctx, inputFile, log)
}

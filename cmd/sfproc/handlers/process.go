// Package handlers implements the business logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"github.com/imamik/sfproc/internal/config"
	"github.com/imamik/sfproc/internal/logging"
	"github.com/imamik/sfproc/internal/output"
	"github.com/imamik/sfproc/internal/platform/s3"
	"github.com/imamik/sfproc/internal/processor"
	"github.com/imamik/sfproc/internal/settlement"
)

// Artifact names written to the report directory.
const (
	summaryArtifact = "summary.yaml"
	metricsArtifact = "metrics.prom"
)

// Factory function variables for process - can be replaced in tests.
var (
	// newStore creates the object store client.
	newStore = func(ctx context.Context, store config.Store) (processor.Store, error) {
		client, err := s3.NewClient(ctx, store)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	// newLogger creates the process logger.
	newLogger = logging.New

	// newWriter selects where run artifacts are persisted.
	newWriter = output.New

	// summaryOut receives the rendered run summary.
	summaryOut io.Writer = os.Stdout
)

// Process handles the process command.
//
// It builds the key classification rules and the store client, runs the
// processor once and reports the summary. Only configuration errors and a
// listing failure are returned; per-object failures are part of the summary.
func Process(ctx context.Context, cfg *config.Run) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, flush := newLogger(cfg.Verbose)
	defer flush()
	ctx = logr.NewContext(ctx, log)

	patternsCfg, err := config.LoadPatterns(cfg.PatternsFile)
	if err != nil {
		return err
	}
	patterns, err := settlement.NewPatternSet(patternsCfg)
	if err != nil {
		return fmt.Errorf("invalid classification rules: %w", err)
	}

	store, err := newStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	metrics := processor.NewMetrics()
	summary, runErr := processor.New(cfg, store, patterns, processor.WithMetrics(metrics)).Run(ctx)
	if summary == nil {
		log.Error(runErr, "Something went wrong")
		return runErr
	}

	persistArtifacts(log, newWriter(cfg.ReportDir), summary, metrics)
	_, _ = fmt.Fprint(summaryOut, renderSummary(summary))

	return runErr
}

// persistArtifacts writes the summary and metrics. Failures are logged and
// do not change the outcome of the run.
func persistArtifacts(log logr.Logger, w output.Writer, summary *processor.Summary, metrics *processor.Metrics) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		log.Error(err, "Warning: failed to encode run summary")
	} else if err := w.Write(summaryArtifact, data); err != nil {
		log.Error(err, "Warning: failed to persist run summary")
	}

	text, err := metrics.Text()
	if err != nil {
		log.Error(err, "Warning: failed to render run metrics")
		return
	}
	if err := w.Write(metricsArtifact, text); err != nil {
		log.Error(err, "Warning: failed to persist run metrics")
	}
}

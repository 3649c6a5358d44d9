package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/sfproc/internal/config"
	"github.com/imamik/sfproc/internal/platform/s3"
	"github.com/imamik/sfproc/internal/settlement"
)

// Processor sequences listing, classification and copying for one run.
type Processor struct {
	cfg         *config.Run
	store       Store
	patterns    *settlement.PatternSet
	transformer *settlement.Transformer
	copier      *Copier
	metrics     *Metrics
}

// Option is a functional option for Processor configuration.
type Option func(*options)

type options struct {
	metrics         *Metrics
	transformerOpts []settlement.TransformerOption
}

// WithMetrics records the run into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTransformerOptions passes options to the settlement transformer.
func WithTransformerOptions(opts ...settlement.TransformerOption) Option {
	return func(o *options) {
		o.transformerOpts = append(o.transformerOpts, opts...)
	}
}

// New creates a Processor for the run described by cfg.
func New(cfg *config.Run, store Store, patterns *settlement.PatternSet, opts ...Option) *Processor {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &Processor{
		cfg:         cfg,
		store:       store,
		patterns:    patterns,
		transformer: settlement.NewTransformer(patterns, cfg.Suffix, cfg.Endpoint, o.transformerOpts...),
		copier:      NewCopier(store, o.metrics),
		metrics:     o.metrics,
	}
}

// Run processes every key under the configured bucket and prefix.
//
// A listing failure returns an error wrapping settlement.ErrListingFailed
// and no object is copied. Per-object failures never fail the run. When ctx
// is cancelled the loop stops before the next object and the partial
// summary is returned together with the context error.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("bucket", p.cfg.Bucket, "endpoint", p.cfg.Endpoint)

	log.Info("Searching settlement files",
		"prefix", p.cfg.Prefix,
		"pattern", p.cfg.Regex,
		"suffix", p.cfg.Suffix,
		"kmsKeyConfigured", p.cfg.KMSKey != "",
		"pretend", p.cfg.Pretend,
	)

	start := time.Now()
	keys, err := p.store.ListKeys(ctx, p.cfg.Bucket, p.cfg.Prefix, p.cfg.PageSize)
	p.metrics.recordStoreCall(opList, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", settlement.ErrListingFailed, err)
	}

	summary := &Summary{
		Bucket:     p.cfg.Bucket,
		Prefix:     p.cfg.Prefix,
		Endpoint:   p.cfg.Endpoint,
		Pretend:    p.cfg.Pretend,
		Discovered: len(keys),
	}
	p.metrics.recordDiscovered(len(keys))
	log.Info("Listed objects", "count", len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			log.Info("Run interrupted", "processed", summary.Eligible+summary.Ineligible+summary.InvalidPattern)
			return summary, err
		}

		outcome := p.process(ctx, log.WithValues("key", key), key)
		summary.record(outcome)
		p.metrics.recordOutcome(outcome)
	}

	log.Info("Run finished",
		"discovered", summary.Discovered,
		"eligible", summary.Eligible,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"pretended", summary.Pretended,
	)
	return summary, nil
}

// process handles a single key and reports its outcome.
func (p *Processor) process(ctx context.Context, log logr.Logger, key string) Outcome {
	ok, err := p.patterns.Eligible(key, p.cfg.Regex)
	if err != nil {
		log.Error(err, "Skipping object, user pattern does not compile")
		return OutcomeInvalidPattern
	}
	if !ok {
		log.V(1).Info("Skipping object, not a settlement file")
		return OutcomeIneligible
	}

	file, err := p.transformer.Transform(p.cfg.Bucket, key)
	if err != nil {
		log.Error(err, "Skipping object, cannot derive settlement file")
		return OutcomeRejected
	}

	log = log.WithValues("backupKey", file.BackupKey(), "parentCorrelationId", file.ParentCorrelationID())
	if file.SameKey() {
		log.Info("Warning: backup key equals source key, copy rewrites the object in place")
	}

	if p.cfg.Pretend {
		log.Info("Pretending to copy settlement file", "file", file)
		return OutcomePretended
	}

	if err := p.copier.Copy(ctx, file, p.cfg.KMSKey); err != nil {
		if errors.Is(err, settlement.ErrMissingEncryptionKey) {
			log.Error(err, "Skipping streamable object, no KMS key configured")
			return OutcomeMissingEncryptionKey
		}
		log.Error(err, "Failed to copy settlement file", "code", s3.ErrorCode(err))
		return OutcomeCopyFailed
	}

	log.Info("Copied settlement file", "tenant", file.Tenant(), "streamable", file.Streamable())
	return OutcomeCopied
}

package runner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/swapkit/catalog"
	"github.com/kbukum/swapkit/credentials"
	"github.com/kbukum/swapkit/errors"
	"github.com/kbukum/swapkit/logger"
	"github.com/kbukum/swapkit/request"
	"github.com/kbukum/swapkit/validation"
)

// Executor performs the network round trip a descriptor describes. The
// runner only interprets a binary success/failure outcome; transport policy
// (timeouts, cancellation) lives entirely behind this interface.
type Executor interface {
	Execute(ctx context.Context, d *request.Descriptor) (json.RawMessage, error)
}

// Config wires a Runner.
type Config struct {
	// Catalog is the operation table for this adapter family.
	Catalog *catalog.Catalog
	// BaseURL is the service base URL.
	BaseURL string
	// Executor performs the HTTP calls.
	Executor Executor
	// Credentials optionally supplies the x-api-key header. Nil means
	// unauthenticated access.
	Credentials credentials.Provider
	// Logger receives per-run and per-item log events. Nil disables
	// logging.
	Logger *logger.Logger
}

// Options select per-invocation behavior. The mode is fixed for the whole
// run; it is never changed mid-batch.
type Options struct {
	// ContinueOnError turns failure isolation on: per-item failures
	// become error-shaped results instead of aborting the run.
	ContinueOnError bool
}

// Runner executes batches against one adapter family. It holds only
// read-only state and is safe for concurrent use, though each Run processes
// its items strictly sequentially.
type Runner struct {
	cat     *catalog.Catalog
	baseURL string
	exec    Executor
	creds   credentials.Provider
	log     *logger.Logger
}

// New creates a Runner.
func New(cfg Config) (*Runner, error) {
	v := validation.New()
	v.Check(cfg.Catalog != nil, "catalog", "is required")
	v.Check(cfg.BaseURL != "", "base_url", "is required")
	v.Check(cfg.Executor != nil, "executor", "is required")
	if err := v.Error(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		cat:     cfg.Catalog,
		baseURL: cfg.BaseURL,
		exec:    cfg.Executor,
		creds:   cfg.Credentials,
		log:     log.WithComponent("runner"),
	}, nil
}

// Run processes the full input once. In isolation mode it always returns
// one result per item; in abort mode it returns the successes gathered
// before the first failure together with that failure, annotated with the
// offending item's index.
func (r *Runner) Run(ctx context.Context, items []Item, opts Options) ([]Result, error) {
	log := r.log.WithFields(map[string]any{
		logger.FieldRunID:   uuid.NewString(),
		logger.FieldCatalog: r.cat.Name(),
	})
	log.Debug("run started", logger.Fields("items", len(items), "continue_on_error", opts.ContinueOnError))

	start := time.Now()
	results := make([]Result, 0, len(items))
	for i, item := range items {
		payload, err := r.runItem(ctx, item)
		if err != nil {
			fields := logger.ErrorFields(item.Operation, err)
			fields[logger.FieldItemIndex] = i
			log.Warn("item failed", fields)
			if !opts.ContinueOnError {
				return results, errors.ItemFailed(i, err)
			}
			results = append(results, Result{Index: i, Error: err.Error()})
			continue
		}
		results = append(results, Result{Index: i, Payload: payload})
	}

	log.Info("run complete", logger.Fields(
		"items", len(items),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return results, nil
}

// runItem performs the per-item pipeline: resolve, build, inject, execute.
func (r *Runner) runItem(ctx context.Context, item Item) (json.RawMessage, error) {
	vals, err := r.cat.Resolve(item.Operation, catalog.MapSource(item.Params))
	if err != nil {
		return nil, err
	}

	desc, err := request.Build(r.cat, item.Operation, vals, r.baseURL)
	if err != nil {
		return nil, err
	}

	// Credential absence is silent: no header, no error.
	for k, v := range credentials.Headers(ctx, r.creds) {
		desc.SetHeader(k, v)
	}

	payload, err := r.exec.Execute(ctx, desc)
	if err != nil {
		return nil, errors.RequestFailed(err)
	}
	return payload, nil
}

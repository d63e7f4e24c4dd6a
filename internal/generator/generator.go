// Package generator expands the parameter tables into variants and writes
// each variant's init.conf and run.conf.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/me/confgen/internal/config"
	"github.com/me/confgen/internal/logging"
	"github.com/me/confgen/internal/render"
	"github.com/me/confgen/pkg/model"
	"golang.org/x/sync/errgroup"
)

// Generator runs one generation pass over a fixed set of tables.
type Generator struct {
	cfg    config.GeneratorConfig
	tables model.Tables
	logger *slog.Logger
	runID  string

	progressMu sync.Mutex
	progress   io.Writer

	files atomic.Int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithProgress sets where progress lines are printed (default os.Stdout).
func WithProgress(w io.Writer) Option {
	return func(g *Generator) { g.progress = w }
}

// WithRunID fixes the pass ID instead of generating one.
func WithRunID(id string) Option {
	return func(g *Generator) { g.runID = id }
}

// New creates a Generator. The tables are not copied and must not be
// modified while Run is in progress.
func New(cfg config.GeneratorConfig, tables model.Tables, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	g := &Generator{
		cfg:      cfg,
		tables:   tables,
		logger:   logger,
		progress: os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.runID == "" {
		g.runID = uuid.NewString()
	}
	if g.cfg.OutputDir == "" {
		g.cfg.OutputDir = "."
	}
	return g
}

// Summary reports the outcome of a pass.
type Summary struct {
	RunID    string
	Variants int
	Files    int
	Failed   int
}

// Run generates every variant. By default the first failure aborts the
// pass; files written for earlier variants are left in place. With
// KeepGoing, output failures are collected and returned joined once every
// variant has been attempted. Malformed records always abort.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	logger := logging.ForRun(g.logger, g.runID)
	g.files.Store(0)

	jobs, err := Plan(g.tables)
	if err != nil {
		logger.Error("planning failed", "error", err)
		return Summary{RunID: g.runID, Variants: g.tables.Count()}, err
	}
	workers := g.cfg.MaxWorkers()

	logger.Info("generating variants",
		"variants", len(jobs),
		"output_dir", g.cfg.OutputDir,
		"workers", workers,
		"dry_run", g.cfg.DryRun,
	)

	var errs []error
	if workers == 1 {
		errs, err = g.runSerial(ctx, jobs, logger)
	} else {
		errs, err = g.runParallel(ctx, jobs, workers, logger)
	}

	sum := Summary{RunID: g.runID, Variants: len(jobs), Files: int(g.files.Load())}
	for _, e := range errs {
		if e != nil {
			sum.Failed++
		}
	}
	if err = errors.Join(append(errs, err)...); err != nil {
		logger.Error("generation failed", "failed", sum.Failed, "files", sum.Files, "error", err)
		return sum, err
	}
	logger.Info("generation finished", "files", sum.Files)
	return sum, nil
}

func (g *Generator) runSerial(ctx context.Context, jobs []Job, logger *slog.Logger) ([]error, error) {
	var errs []error
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return errs, err
		}
		if err := g.generate(job, logger); err != nil {
			if !g.isolated(err) {
				return append(errs, err), nil
			}
			logger.Warn("variant failed", "dir", job.Dir, "error", err)
			errs = append(errs, err)
		}
	}
	return errs, nil
}

// runParallel spreads jobs over a bounded errgroup. Variants write to
// disjoint directories so no further synchronization is needed.
func (g *Generator) runParallel(ctx context.Context, jobs []Job, workers int, logger *slog.Logger) ([]error, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	errs := make([]error, len(jobs))
	for _, job := range jobs {
		if egCtx.Err() != nil {
			break
		}
		job := job
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return nil
			}
			if err := g.generate(job, logger); err != nil {
				if !g.isolated(err) {
					return err
				}
				logger.Warn("variant failed", "dir", job.Dir, "error", err)
				errs[job.Variant.Index] = err
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return append(errs, err), nil
	}
	return errs, ctx.Err()
}

// isolated reports whether err may be skipped under KeepGoing. Only output
// failures are; anything else means the tables are broken.
func (g *Generator) isolated(err error) bool {
	var oe *OutputError
	return g.cfg.KeepGoing && errors.As(err, &oe)
}

// generate renders and writes one variant.
func (g *Generator) generate(job Job, logger *slog.Logger) error {
	g.announce(job)

	initValues, err := render.InitValuesFor(job.Variant)
	if err != nil {
		return fmt.Errorf("variant %s: %w", job.Dir, err)
	}
	initDoc, err := render.RenderInit(initValues)
	if err != nil {
		return fmt.Errorf("variant %s: %w", job.Dir, err)
	}
	runValues, err := render.RunValuesFor(job.Variant, job.Flags, g.cfg.Timing)
	if err != nil {
		return fmt.Errorf("variant %s: %w", job.Dir, err)
	}
	runDoc, err := render.RenderRun(runValues)
	if err != nil {
		return fmt.Errorf("variant %s: %w", job.Dir, err)
	}

	res, cs, num := job.Variant.Tags()
	logger.Debug("variant rendered",
		"resolution", res, "case", cs, "numeric", num,
		"dir", job.Dir, "fct", job.Flags.FCT, "fct_along_stream", job.Flags.FCTAlongStream,
	)
	if g.cfg.DryRun {
		return nil
	}

	dir := filepath.Join(g.cfg.OutputDir, filepath.FromSlash(job.Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &OutputError{Op: OpMkdir, Path: dir, Err: err}
	}
	for _, doc := range []struct {
		name string
		data []byte
	}{
		{render.InitName, initDoc},
		{render.RunName, runDoc},
	} {
		path := filepath.Join(dir, doc.name)
		if err := os.WriteFile(path, doc.data, 0o644); err != nil {
			return &OutputError{Op: OpWrite, Path: path, Err: err}
		}
		g.files.Add(1)
	}
	return nil
}

// announce prints the progress line for a variant.
func (g *Generator) announce(job Job) {
	prefix := ""
	if g.cfg.DryRun {
		prefix = "[dry-run] "
	}
	g.progressMu.Lock()
	defer g.progressMu.Unlock()
	fmt.Fprintf(g.progress, "%sgenerate %s and %s (Dir=./%s)\n", prefix, render.InitName, render.RunName, job.Dir)
}

// Package iopipeline implements the Runner interface: it sequences the
// collect, filter, detail-fetch and simplify stages, checkpoints each
// stage's output, and resumes from the most advanced checkpoint left by a
// previous run.
package iopipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/herbdata/herbario/internal/iochecklist"
	"github.com/herbdata/herbario/internal/iocheckpoint"
	"github.com/herbdata/herbario/internal/iofetch"
	"github.com/herbdata/herbario/internal/iofs"
	app "github.com/herbdata/herbario/pkg"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/herbdata/herbario/pkg/sources"
	"github.com/herbdata/herbario/pkg/species"
)

// pipeline implements the Runner interface.
type pipeline struct {
	cfg       *config.Config
	log       *slog.Logger
	fetcher   *iofetch.Client
	checklist *iochecklist.Loader
	store     *iocheckpoint.Store
	tablePath string
}

// New creates a Runner. The logger is scoped to one run and tagged with a
// run id.
func New(
	cfg *config.Config,
	src *sources.SourcesConfig,
	log *slog.Logger,
) (app.Runner, error) {
	log = log.With("run_id", uuid.NewString())

	store, err := iocheckpoint.New(config.TempDir(cfg.WorkDir), log)
	if err != nil {
		return nil, err
	}

	res := &pipeline{
		cfg:       cfg,
		log:       log,
		fetcher:   iofetch.New(src.Species, cfg, log),
		checklist: iochecklist.New(src.Checklist, cfg, log),
		store:     store,
		tablePath: config.TablePath(cfg.WorkDir),
	}
	return res, nil
}

// Run executes or resumes the pipeline. Stages upstream of the resume
// point run in order, each immediately checkpointed; stages downstream are
// loaded from their checkpoints instead of recomputed.
func (p *pipeline) Run(ctx context.Context) (string, error) {
	startTime := time.Now()

	// The checklist download is best-effort: a failure matters only if
	// the run actually reaches the filter stage.
	if err := p.checklist.Download(ctx); err != nil {
		gn.Warn("Could not download the reference checklist")
	}

	point := p.resumePoint()
	rows, err := p.runFrom(ctx, point)
	if err != nil {
		return "", err
	}

	if point != resumeFinalTable {
		if err = writeTable(p.tablePath, rows); err != nil {
			return "", err
		}
	}

	p.cleanup()
	p.summary(len(rows), time.Since(startTime))

	return p.tablePath, nil
}

// runFrom produces the simplified rows, resuming at the given point.
func (p *pipeline) runFrom(
	ctx context.Context,
	point resumePoint,
) ([]species.Simplified, error) {
	if point == resumeFinalTable {
		gn.Info("Reusing last species table")
		return readTable(p.tablePath)
	}

	details, err := p.acceptedDetails(ctx, point)
	if err != nil {
		return nil, err
	}

	gn.Info("Simplifying species data")
	return species.Simplify(details), nil
}

// acceptedDetails returns the full detail documents, resuming from a
// checkpoint when one exists.
func (p *pipeline) acceptedDetails(
	ctx context.Context,
	point resumePoint,
) ([]species.Detail, error) {
	if point == resumeAcceptedDetails {
		gn.Info("Reusing last accepted species file")
		var details []species.Detail
		if err := p.store.Load(iocheckpoint.StageAccepted, &details); err != nil {
			return nil, err
		}
		return details, nil
	}

	filtered, err := p.filteredStubs(ctx, point)
	if err != nil {
		return nil, err
	}

	details, err := p.fetcher.Details(ctx, filtered)
	if err != nil {
		// keep the partial result, the abort cause is in the log
		gn.Warn("Species details are incomplete")
	}
	p.checkpoint(iocheckpoint.StageAccepted, details)
	return details, nil
}

// filteredStubs returns the checklist-filtered species list, resuming
// from a checkpoint when one exists.
func (p *pipeline) filteredStubs(
	ctx context.Context,
	point resumePoint,
) ([]species.Stub, error) {
	if point == resumeFilteredStubs {
		gn.Info("Reusing last filtered species file")
		var filtered []species.Stub
		if err := p.store.Load(iocheckpoint.StageFiltered, &filtered); err != nil {
			return nil, err
		}
		return filtered, nil
	}

	stubs, err := p.allStubs(ctx, point)
	if err != nil {
		return nil, err
	}

	names, err := p.checklist.AcceptedNames()
	if err != nil {
		// missing prerequisite, surfaced to the caller
		return nil, err
	}

	gn.Info("Filtering species against the checklist")
	filtered := species.FilterByNames(stubs, names)
	p.checkpoint(iocheckpoint.StageFiltered, filtered)
	return filtered, nil
}

// allStubs returns the complete collected species list, resuming from a
// checkpoint when one exists.
func (p *pipeline) allStubs(
	ctx context.Context,
	point resumePoint,
) ([]species.Stub, error) {
	if point == resumeAllStubs {
		gn.Info("Reusing last species list file")
		var stubs []species.Stub
		if err := p.store.Load(iocheckpoint.StageAll, &stubs); err != nil {
			return nil, err
		}
		return stubs, nil
	}

	gn.Info("No file to reuse, downloading from source")
	stubs, err := p.fetcher.Collect(ctx)
	if err != nil {
		// keep the partial result, the abort cause is in the log
		gn.Warn("Species list is incomplete")
	}
	p.checkpoint(iocheckpoint.StageAll, stubs)
	return stubs, nil
}

// checkpoint persists a stage's output. A failed save is logged by the
// store and does not stop the run; the stage is simply recomputed next
// time.
func (p *pipeline) checkpoint(stage iocheckpoint.Stage, data any) {
	if _, err := p.store.Save(stage, data); err != nil {
		gn.Warn("Stage <em>%s</em> was not checkpointed", string(stage))
	}
}

func (p *pipeline) cleanup() {
	if p.cfg.CleanLogs {
		err := iofs.CleanEmptyLogs(config.ErrorsDir(p.cfg.WorkDir))
		if err != nil {
			p.log.Error("cannot clean empty logs", "error", err)
		}
	}
	if p.cfg.CleanTemp {
		err := iofs.CleanTemp(config.TempDir(p.cfg.WorkDir))
		if err != nil {
			p.log.Error("cannot clean checkpoints", "error", err)
		}
	}
}

func (p *pipeline) summary(rows int, elapsed time.Duration) {
	gn.Info(
		"Species table <em>%s</em> holds %s records (%s)",
		p.tablePath,
		humanize.Comma(int64(rows)),
		gnfmt.TimeString(elapsed.Seconds()),
	)
}

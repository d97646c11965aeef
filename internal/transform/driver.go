package transform

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/profile-normalizer/internal/audit"
	"github.com/profile-normalizer/internal/debug"
	"github.com/profile-normalizer/internal/logger"
	"github.com/profile-normalizer/internal/store"
)

// DefaultBatchSize is used when Options.BatchSize is not positive
const DefaultBatchSize = 100

// Recorder persists the warnings of one run
type Recorder interface {
	RunID() string
	Record(ctx context.Context, e audit.Entry) error
	Flush(ctx context.Context) error
}

// RecorderFactory creates a recorder for the named job
type RecorderFactory func(job string) Recorder

// Options control a driver run
type Options struct {
	BatchSize int
	DryRun    bool
	Debug     bool
}

// Driver applies jobs to the staging table
type Driver struct {
	store       store.Store
	guard       store.WriteGuard
	newRecorder RecorderFactory
	opts        Options
}

// RunStats summarises one job run
type RunStats struct {
	Job            string
	RunID          string
	DryRun         bool
	Rows           int
	Warnings       int
	Batches        int
	FailedBatches  int
	RowsAffected   int64
	BatchAffected  []int64
	ProcessingTime time.Duration
}

// NewDriver creates a driver. A nil guard means no guard.
func NewDriver(s store.Store, guard store.WriteGuard, opts Options) *Driver {
	if guard == nil {
		guard = store.NoopGuard{}
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Driver{store: s, guard: guard, opts: opts}
}

// WithRecorder enables the audit trail
func (d *Driver) WithRecorder(f RecorderFactory) *Driver {
	d.newRecorder = f
	return d
}

// Run fetches every row, applies the job's transform and writes the results
// batch by batch. Fetch and guard errors are fatal; a failing batch is logged
// and skipped. The guard is restored whenever it was lifted.
func (d *Driver) Run(ctx context.Context, job Job) (stats *RunStats, err error) {
	debug.DebugHeader(d.opts.Debug)
	defer debug.DebugFooter(d.opts.Debug)

	start := time.Now()
	var rec Recorder
	runID := uuid.NewString()
	if d.newRecorder != nil {
		rec = d.newRecorder(job.Name)
		runID = rec.RunID()
	}
	lg := logger.ForRun(job.Name, runID)
	stats = &RunStats{Job: job.Name, RunID: runID, DryRun: d.opts.DryRun}
	defer func() { stats.ProcessingTime = time.Since(start) }()

	rows, err := d.store.FetchRows(ctx, job.Reads)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch rows for %s: %w", job.Name, err)
	}
	stats.Rows = len(rows)
	lg.Info().Int("rows", stats.Rows).Msg("Rows fetched")

	done := debug.DebugTiming(d.opts.Debug, job.Name+" transform")
	updates := d.transformRows(ctx, lg, job, rows, rec, stats)
	done()

	if rec != nil {
		if ferr := rec.Flush(ctx); ferr != nil {
			lg.Error().Err(ferr).Msg("Failed to write audit entries")
		}
	}

	if d.opts.DryRun {
		for _, u := range updates {
			debug.DebugOutput(d.opts.Debug, "%s: %v", u.ID, u.Values)
		}
		lg.Info().Int("rows", stats.Rows).Int("warnings", stats.Warnings).Msg("Dry run complete, nothing written")
		return stats, nil
	}
	if len(updates) == 0 {
		lg.Info().Msg("No rows to write")
		return stats, nil
	}

	// Restore is deferred before Disable so a half-applied disable is undone too
	defer func() {
		if rerr := d.guard.Restore(); rerr != nil {
			lg.Error().Err(rerr).Msg("Write guard was not restored")
			if err == nil {
				err = rerr
			}
		}
	}()
	if err := d.guard.Disable(ctx); err != nil {
		return stats, fmt.Errorf("failed to lift write guard for %s: %w", job.Name, err)
	}

	for from := 0; from < len(updates); from += d.opts.BatchSize {
		if cerr := ctx.Err(); cerr != nil {
			return stats, fmt.Errorf("run of %s stopped after %d batches: %w", job.Name, stats.Batches, cerr)
		}

		to := min(from+d.opts.BatchSize, len(updates))
		stats.Batches++

		done := debug.DebugTiming(d.opts.Debug, fmt.Sprintf("%s batch %d", job.Name, stats.Batches))
		n, berr := d.store.ApplyUpdates(ctx, job.Writes, updates[from:to])
		done()
		if berr != nil {
			stats.FailedBatches++
			stats.BatchAffected = append(stats.BatchAffected, 0)
			lg.Error().Err(berr).
				Int("batch", stats.Batches).
				Str("first_id", updates[from].ID).
				Str("last_id", updates[to-1].ID).
				Msg("Batch update failed")
			continue
		}

		stats.RowsAffected += n
		stats.BatchAffected = append(stats.BatchAffected, n)
		lg.Info().Int("batch", stats.Batches).Int64("affected", n).
			Msgf("Batch %d-%d of %d written", from+1, to, len(updates))
	}

	lg.Info().
		Int("rows", stats.Rows).
		Int("batches", stats.Batches).
		Int("failed_batches", stats.FailedBatches).
		Int64("affected", stats.RowsAffected).
		Int("warnings", stats.Warnings).
		Dur("took", time.Since(start)).
		Msg("Job complete")

	return stats, nil
}

func (d *Driver) transformRows(ctx context.Context, lg zerolog.Logger, job Job, rows []store.Row, rec Recorder, stats *RunStats) []store.Update {
	updates := make([]store.Update, 0, len(rows))
	for _, row := range rows {
		values, warnings := job.Transform(row.Values)
		for _, w := range warnings {
			stats.Warnings++
			lg.Warn().
				Str("profile_id", row.ID).
				Str("column", w.Column).
				Str("raw", w.Raw).
				Msg(w.Reason)
			if rec == nil {
				continue
			}
			if rerr := rec.Record(ctx, audit.Entry{ProfileID: row.ID, Column: w.Column, Raw: w.Raw, Reason: w.Reason}); rerr != nil {
				lg.Error().Err(rerr).Msg("Failed to write audit entries")
			}
		}
		updates = append(updates, store.Update{ID: row.ID, Values: values})
	}
	return updates
}

// RunAll runs jobs in order and stops at the first fatal error
func (d *Driver) RunAll(ctx context.Context, jobs []Job) ([]*RunStats, error) {
	all := make([]*RunStats, 0, len(jobs))
	for i, j := range jobs {
		lg := logger.ForJob(j.Name)
		lg.Info().Int("step", i+1).Int("of", len(jobs)).Msg("Starting job")

		stats, err := d.Run(ctx, j)
		all = append(all, stats)
		if err != nil {
			lg.Error().Err(err).Msg("Job failed, remaining jobs skipped")
			return all, err
		}
	}
	return all, nil
}

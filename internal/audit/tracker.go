// Package audit keeps a persistent trail of the values a normalization run
// could not map, so operators can review them after the run.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/profile-normalizer/internal/debug"
)

// flushSize caps the rows sent in one multi-row INSERT
const flushSize = 500

// Entry is one unmapped or suspicious raw value
type Entry struct {
	ProfileID string
	Column    string
	Raw       string
	Reason    string
}

// auditRow is the normalization_audit row shape
type auditRow struct {
	RunID     string `db:"run_id"`
	Job       string `db:"job"`
	ProfileID string `db:"profile_id"`
	Column    string `db:"column_name"`
	Raw       string `db:"raw_value"`
	Reason    string `db:"reason"`
}

// Tracker buffers the entries of one job run and writes them in batches
type Tracker struct {
	db      *sqlx.DB
	runID   string
	job     string
	pending []auditRow
	written int
	debug   bool
}

// NewTracker creates a tracker with a fresh run id
func NewTracker(db *sqlx.DB, job string) *Tracker {
	return &Tracker{
		db:    db,
		runID: uuid.NewString(),
		job:   job,
	}
}

// WithDebug enables debug output
func (t *Tracker) WithDebug(enabled bool) *Tracker {
	t.debug = enabled
	return t
}

// RunID returns the id stamped on every entry of this run
func (t *Tracker) RunID() string {
	return t.runID
}

// Written returns how many entries reached the database
func (t *Tracker) Written() int {
	return t.written
}

// Record queues an entry, flushing when the buffer is full
func (t *Tracker) Record(ctx context.Context, e Entry) error {
	t.pending = append(t.pending, auditRow{
		RunID:     t.runID,
		Job:       t.job,
		ProfileID: e.ProfileID,
		Column:    e.Column,
		Raw:       e.Raw,
		Reason:    e.Reason,
	})
	if len(t.pending) >= flushSize {
		return t.Flush(ctx)
	}
	return nil
}

// Flush writes all queued entries in one statement.
// The buffer is cleared even when the insert fails so one bad batch is not retried forever.
func (t *Tracker) Flush(ctx context.Context) error {
	if len(t.pending) == 0 {
		return nil
	}
	rows := t.pending
	t.pending = nil

	debug.DebugOutput(t.debug, "Writing %d audit entries for run %s", len(rows), t.runID)

	_, err := t.db.NamedExecContext(ctx, `
		INSERT INTO normalization_audit (run_id, job, profile_id, column_name, raw_value, reason)
		VALUES (:run_id, :job, :profile_id, :column_name, :raw_value, :reason)
	`, rows)
	if err != nil {
		return fmt.Errorf("failed to insert %d audit entries: %w", len(rows), err)
	}

	t.written += len(rows)
	return nil
}

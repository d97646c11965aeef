package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTracker(t *testing.T) (*Tracker, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewTracker(sqlx.NewDb(mockDB, "postgres"), "income"), mock
}

func TestTrackerRunID(t *testing.T) {
	tr, _ := newMockTracker(t)
	_, err := uuid.Parse(tr.RunID())
	assert.NoError(t, err)
}

func TestTrackerFlush(t *testing.T) {
	tr, mock := newMockTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.Record(ctx, Entry{ProfileID: "P1", Column: "income_raw", Raw: "lots", Reason: "unparseable income"}))
	require.NoError(t, tr.Record(ctx, Entry{ProfileID: "P2", Column: "income_raw", Raw: "??", Reason: "unparseable income"}))

	mock.ExpectExec("INSERT INTO normalization_audit").
		WithArgs(
			tr.RunID(), "income", "P1", "income_raw", "lots", "unparseable income",
			tr.RunID(), "income", "P2", "income_raw", "??", "unparseable income",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, tr.Flush(ctx))
	assert.Equal(t, 2, tr.Written())
	assert.NoError(t, mock.ExpectationsWereMet())

	// nothing pending, no statement
	require.NoError(t, tr.Flush(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerFlushError(t *testing.T) {
	tr, mock := newMockTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.Record(ctx, Entry{ProfileID: "P1", Column: "phone_raw", Raw: "123", Reason: "no phone number found"}))
	mock.ExpectExec("INSERT INTO normalization_audit").WillReturnError(errors.New("relation does not exist"))

	err := tr.Flush(ctx)
	require.Error(t, err)
	assert.Zero(t, tr.Written())

	// the failed batch is dropped
	require.NoError(t, tr.Flush(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerFlushesWhenFull(t *testing.T) {
	tr, mock := newMockTracker(t)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO normalization_audit").WillReturnResult(sqlmock.NewResult(0, flushSize))

	for i := 0; i < flushSize; i++ {
		require.NoError(t, tr.Record(ctx, Entry{ProfileID: "P", Column: "siblings_raw", Reason: "undetermined"}))
	}
	assert.Equal(t, flushSize, tr.Written())
	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	return NewPostgresStore(db, "profile_staging", "profile_id_raw"), mock
}

func TestFetchRows(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"profile_id_raw", "father_occupation_raw", "mother_occupation_raw"}).
		AddRow("P1", "Retired", nil).
		AddRow("P2", nil, "Homemaker")

	query := `SELECT "profile_id_raw"::text, "father_occupation_raw", "mother_occupation_raw" FROM "profile_staging" ORDER BY "profile_id_raw"`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	got, err := s.FetchRows(context.Background(), []string{"father_occupation_raw", "mother_occupation_raw"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "P1", got[0].ID)
	assert.Equal(t, "Retired", got[0].Values["father_occupation_raw"])
	assert.Equal(t, "", got[0].Values["mother_occupation_raw"], "NULL must come back as the empty string")
	assert.Equal(t, "Homemaker", got[1].Values["mother_occupation_raw"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRowsError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err := s.FetchRows(context.Background(), []string{"education_raw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch rows from profile_staging")
}

func TestApplyUpdatesBuildsOneStatement(t *testing.T) {
	s, mock := newMockStore(t)

	columns := []Column{{Name: "income_lakhs", Type: "numeric"}, {Name: "income_range"}}
	batch := []Update{
		{ID: "P1", Values: []any{12.5, "₹10 to ₹15 Lakh"}},
		{ID: "P2", Values: []any{nil, ""}},
	}

	query := `UPDATE "profile_staging" AS t SET "income_lakhs" = v."income_lakhs", "income_range" = v."income_range" ` +
		`FROM (VALUES ($1::text, $2::numeric, $3::text), ($4::text, $5::numeric, $6::text)) ` +
		`AS v(_key, "income_lakhs", "income_range") WHERE t."profile_id_raw"::text = v._key`

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("P1", 12.5, "₹10 to ₹15 Lakh", "P2", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := s.ApplyUpdates(context.Background(), columns, batch)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyUpdatesEmptyBatch(t *testing.T) {
	s, mock := newMockStore(t)

	n, err := s.ApplyUpdates(context.Background(), []Column{{Name: "education"}}, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyUpdatesValueCountMismatch(t *testing.T) {
	s, _ := newMockStore(t)

	_, err := s.ApplyUpdates(context.Background(),
		[]Column{{Name: "sisters"}, {Name: "brothers"}},
		[]Update{{ID: "P1", Values: []any{"No Sisters"}}})
	assert.Error(t, err)
}

func TestApplyUpdatesError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE").WillReturnError(errors.New("canonical columns of profile_staging are write protected"))

	_, err := s.ApplyUpdates(context.Background(), []Column{{Name: "education"}}, []Update{{ID: "P1", Values: []any{"MBA"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply batch of 1")
}

func TestFetchVocabulary(t *testing.T) {
	s, mock := newMockStore(t)

	query := `SELECT DISTINCT "name" FROM "professions" WHERE "name" IS NOT NULL AND btrim("name") <> '' ORDER BY 1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Doctor").AddRow("Engineer"))

	got, err := s.FetchVocabulary(context.Background(), "professions", "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Doctor", "Engineer"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNullable(t *testing.T) {
	f := 4.5
	var nilFloat *float64

	assert.Nil(t, nullable(""))
	assert.Nil(t, nullable(nil))
	assert.Nil(t, nullable(nilFloat))
	assert.Equal(t, 4.5, nullable(&f))
	assert.Equal(t, "MBA", nullable("MBA"))
	assert.Equal(t, 3.0, nullable(3.0))
}

package import_pkg

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockImporter(t *testing.T) (*CSVImporter, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewCSVImporter(sqlx.NewDb(mockDB, "postgres"), "profile_staging", "profile_id_raw"), mock
}

func TestResolveHeader(t *testing.T) {
	header := []string{"\ufeffProfile ID", "Father's Occupation", "Highest Education", "Favourite Colour", "education_raw", "Mobile Number"}

	key, cols := resolveHeader(header, "profile_id_raw")
	assert.Equal(t, 0, key)
	assert.Equal(t, map[string]int{
		"father_occupation_raw": 1,
		"education_raw":         2,
		"phone_raw":             5,
	}, cols)
}

func TestResolveHeaderConfiguredKey(t *testing.T) {
	key, _ := resolveHeader([]string{"siblings", "profile_id_raw"}, "profile_id_raw")
	assert.Equal(t, 1, key)
}

func TestImportUpserts(t *testing.T) {
	ci, mock := newMockImporter(t)

	csvData := strings.Join([]string{
		"Profile ID,Education,Siblings,Notes",
		"P1,B.Tech,1 sister,ignored",
		",MBA,,",
		"P2,,No siblings,",
	}, "\n")

	prep := mock.ExpectPrepare(regexp.QuoteMeta(
		`INSERT INTO "profile_staging" ("profile_id_raw", "education_raw", "siblings_raw") VALUES ($1, $2, $3) ` +
			`ON CONFLICT ("profile_id_raw") DO UPDATE SET "education_raw" = EXCLUDED."education_raw", "siblings_raw" = EXCLUDED."siblings_raw"`,
	))
	prep.ExpectExec().WithArgs("P1", "B.Tech", "1 sister").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("P2", nil, "No siblings").WillReturnResult(sqlmock.NewResult(0, 1))

	stats, err := ci.Import(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, &ImportStats{Read: 3, Imported: 2, Skipped: 1}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportCountsRowErrors(t *testing.T) {
	ci, mock := newMockImporter(t)

	prep := mock.ExpectPrepare("INSERT INTO")
	prep.ExpectExec().WithArgs("P1", "12 LPA").WillReturnError(errors.New("value too long"))
	prep.ExpectExec().WithArgs("P2", "5 lakh").WillReturnResult(sqlmock.NewResult(0, 1))

	stats, err := ci.Import(context.Background(), strings.NewReader("id,Annual Income\nP1,12 LPA\nP2,5 lakh\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, stats.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRejectsHeaderWithoutKey(t *testing.T) {
	ci, _ := newMockImporter(t)

	_, err := ci.Import(context.Background(), strings.NewReader("Education,Siblings\nMBA,none\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile id column")
}

func TestImportRejectsHeaderWithoutAttributes(t *testing.T) {
	ci, _ := newMockImporter(t)

	_, err := ci.Import(context.Background(), strings.NewReader("Profile ID,Notes\nP1,x\n"))
	require.Error(t, err)
}

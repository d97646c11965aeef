package import_pkg

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/profile-normalizer/internal/debug"
)

// ImportStats summarises one CSV import
type ImportStats struct {
	Read     int
	Imported int
	Skipped  int
	Errors   int
}

// CSVImporter loads survey exports into the staging table
type CSVImporter struct {
	db        *sqlx.DB
	table     string
	keyColumn string
	debug     bool
}

// NewCSVImporter creates a new CSV importer
func NewCSVImporter(db *sqlx.DB, table, keyColumn string) *CSVImporter {
	return &CSVImporter{db: db, table: table, keyColumn: keyColumn}
}

// WithDebug enables per-record debug output
func (ci *CSVImporter) WithDebug(enabled bool) *CSVImporter {
	ci.debug = enabled
	return ci
}

// ImportFile imports one CSV file
func (ci *CSVImporter) ImportFile(ctx context.Context, filename string) (*ImportStats, error) {
	log.Info().Str("file", filename).Msg("Importing survey export")

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	return ci.Import(ctx, file)
}

// Import upserts every record of r into the staging table keyed by profile id.
// Re-importing a file refreshes the raw columns and leaves canonical columns alone.
func (ci *CSVImporter) Import(ctx context.Context, r io.Reader) (*ImportStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	keyIndex, mapped := resolveHeader(header, ci.keyColumn)
	if keyIndex < 0 {
		return nil, fmt.Errorf("no profile id column in header %q", header)
	}
	columns := make([]string, 0, len(mapped))
	for _, c := range RawColumns {
		if _, ok := mapped[c]; ok {
			columns = append(columns, c)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no known attribute columns in header %q", header)
	}
	debug.DebugOutput(ci.debug, "Mapped columns: %v (key at %d)", columns, keyIndex)

	stmt, err := ci.db.PreparexContext(ctx, ci.upsertQuery(columns))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	stats := &ImportStats{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn().Err(err).Msg("Error reading CSV record")
			stats.Errors++
			continue
		}
		stats.Read++

		id := strings.TrimSpace(field(record, keyIndex))
		if id == "" {
			debug.DebugOutput(ci.debug, "Skipping record %d without profile id", stats.Read)
			stats.Skipped++
			continue
		}

		args := make([]any, 0, len(columns)+1)
		args = append(args, id)
		for _, c := range columns {
			args = append(args, nullString(field(record, mapped[c])))
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			if ctx.Err() != nil {
				return stats, fmt.Errorf("import cancelled: %w", ctx.Err())
			}
			log.Warn().Err(err).Str("profile_id", id).Msg("Error inserting record")
			stats.Errors++
			continue
		}

		stats.Imported++
		if stats.Imported%1000 == 0 {
			log.Info().Int("imported", stats.Imported).Msg("Import progress")
		}
	}

	log.Info().
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("Import complete")
	return stats, nil
}

func (ci *CSVImporter) upsertQuery(columns []string) string {
	names := make([]string, 0, len(columns)+1)
	placeholders := make([]string, 0, len(columns)+1)
	updates := make([]string, 0, len(columns))

	names = append(names, pq.QuoteIdentifier(ci.keyColumn))
	placeholders = append(placeholders, "$1")
	for i, c := range columns {
		q := pq.QuoteIdentifier(c)
		names = append(names, q)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", q, q))
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		pq.QuoteIdentifier(ci.table),
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		pq.QuoteIdentifier(ci.keyColumn),
		strings.Join(updates, ", "))
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// nullString stores blank cells as NULL
func nullString(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

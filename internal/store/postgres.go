package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/profile-normalizer/internal/debug"
)

//go:embed schema.sql
var schemaSQL string

// PostgresStore reads and writes the profile staging table
type PostgresStore struct {
	db        *sqlx.DB
	table     string
	keyColumn string
	debug     bool
}

// NewPostgresStore creates a store over the given staging table and key column
func NewPostgresStore(db *sqlx.DB, table, keyColumn string) *PostgresStore {
	return &PostgresStore{
		db:        db,
		table:     table,
		keyColumn: keyColumn,
	}
}

// WithDebug enables statement level debug output
func (s *PostgresStore) WithDebug(enabled bool) *PostgresStore {
	s.debug = enabled
	return s
}

// InitSchema creates the staging, lookup and audit tables if they do not exist
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Ping checks that the database answers
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// FetchRows loads the key and the requested raw columns of every profile
func (s *PostgresStore) FetchRows(ctx context.Context, columns []string) ([]Row, error) {
	query := s.selectQuery(columns)
	debug.DebugOutput(s.debug, "Fetching rows: %s", query)

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %s: %w", s.table, err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var id string
		raw := make([]sql.NullString, len(columns))
		dest := make([]any, 0, len(columns)+1)
		dest = append(dest, &id)
		for i := range raw {
			dest = append(dest, &raw[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		values := make(map[string]string, len(columns))
		for i, col := range columns {
			values[col] = raw[i].String
		}
		result = append(result, Row{ID: id, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	debug.DebugOutput(s.debug, "Fetched %d rows", len(result))
	return result, nil
}

func (s *PostgresStore) selectQuery(columns []string) string {
	cols := make([]string, 0, len(columns)+1)
	cols = append(cols, pq.QuoteIdentifier(s.keyColumn)+"::text")
	for _, c := range columns {
		cols = append(cols, pq.QuoteIdentifier(c))
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(cols, ", "), pq.QuoteIdentifier(s.table), pq.QuoteIdentifier(s.keyColumn))
}

// ApplyUpdates writes one batch with a single UPDATE ... FROM (VALUES ...)
// statement and returns the number of rows the database reports as changed
func (s *PostgresStore) ApplyUpdates(ctx context.Context, columns []Column, batch []Update) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	query, args, err := s.updateQuery(columns, batch)
	if err != nil {
		return 0, err
	}
	debug.DebugOutput(s.debug, "Applying %d updates: %s", len(batch), query)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to apply batch of %d: %w", len(batch), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

func (s *PostgresStore) updateQuery(columns []Column, batch []Update) (string, []any, error) {
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("no columns to update")
	}

	set := make([]string, len(columns))
	names := make([]string, len(columns))
	for i, c := range columns {
		q := pq.QuoteIdentifier(c.Name)
		set[i] = fmt.Sprintf("%s = v.%s", q, q)
		names[i] = q
	}

	tuples := make([]string, 0, len(batch))
	args := make([]any, 0, len(batch)*(len(columns)+1))
	n := 1
	for _, u := range batch {
		if len(u.Values) != len(columns) {
			return "", nil, fmt.Errorf("profile %s has %d values for %d columns", u.ID, len(u.Values), len(columns))
		}

		placeholders := make([]string, 0, len(columns)+1)
		placeholders = append(placeholders, fmt.Sprintf("$%d::text", n))
		args = append(args, u.ID)
		n++
		for i, c := range columns {
			placeholders = append(placeholders, fmt.Sprintf("$%d::%s", n, c.SQLType()))
			args = append(args, nullable(u.Values[i]))
			n++
		}
		tuples = append(tuples, "("+strings.Join(placeholders, ", ")+")")
	}

	query := fmt.Sprintf(
		"UPDATE %s AS t SET %s FROM (VALUES %s) AS v(_key, %s) WHERE t.%s::text = v._key",
		pq.QuoteIdentifier(s.table),
		strings.Join(set, ", "),
		strings.Join(tuples, ", "),
		strings.Join(names, ", "),
		pq.QuoteIdentifier(s.keyColumn),
	)
	return query, args, nil
}

// nullable maps the undetermined value to SQL NULL
func nullable(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return val
	case *float64:
		if val == nil {
			return nil
		}
		return *val
	default:
		return v
	}
}

// FetchVocabulary returns the distinct non-blank names of a lookup table
func (s *PostgresStore) FetchVocabulary(ctx context.Context, table, nameColumn string) ([]string, error) {
	col := pq.QuoteIdentifier(nameColumn)
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL AND btrim(%s) <> '' ORDER BY 1",
		col, pq.QuoteIdentifier(table), col, col)

	var names []string
	if err := s.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to load vocabulary from %s: %w", table, err)
	}
	return names, nil
}

// Package store is the persistence boundary of the normalization pipeline.
// Normalizers never see it; only the batch driver, the vocabulary loader and
// the CSV importer talk to it.
package store

import "context"

// Column names a canonical column written by a job and the SQL type its
// values are cast to in the VALUES list
type Column struct {
	Name string
	Type string // "text" when empty
}

// SQLType returns the cast used for the column in generated statements
func (c Column) SQLType() string {
	if c.Type == "" {
		return "text"
	}
	return c.Type
}

// Row is one profile read from the staging table.
// NULL raw values come back as the empty string.
type Row struct {
	ID     string
	Values map[string]string
}

// Update carries the canonical values for one profile, positionally aligned
// with the columns passed to ApplyUpdates. An empty string or nil is written as NULL.
type Update struct {
	ID     string
	Values []any
}

// Store is what the pipeline needs from the database
type Store interface {
	FetchRows(ctx context.Context, columns []string) ([]Row, error)
	ApplyUpdates(ctx context.Context, columns []Column, batch []Update) (int64, error)
	FetchVocabulary(ctx context.Context, table, nameColumn string) ([]string, error)
}

// WriteGuard lifts a protection on the staging table for the duration of the
// write phase. Restore takes no context: it has to run even after the run
// context is cancelled.
type WriteGuard interface {
	Disable(ctx context.Context) error
	Restore() error
}

// NoopGuard is used when no guard statements are configured
type NoopGuard struct{}

// Disable does nothing
func (NoopGuard) Disable(context.Context) error { return nil }

// Restore does nothing
func (NoopGuard) Restore() error { return nil }

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/profile-normalizer/internal/config"
)

const restoreTimeout = 10 * time.Second

// PostgresGuard runs configured statements to lift and restore a
// database-level write protection such as a trigger.
// The statements must not depend on session state since they run on
// different pooled connections.
type PostgresGuard struct {
	db         *sqlx.DB
	disableSQL string
	restoreSQL string
	retries    int
	delay      time.Duration
}

// NewPostgresGuard creates a guard. retries below 1 is treated as 1.
func NewPostgresGuard(db *sqlx.DB, disableSQL, restoreSQL string, retries int, delay time.Duration) *PostgresGuard {
	if retries < 1 {
		retries = 1
	}
	return &PostgresGuard{
		db:         db,
		disableSQL: disableSQL,
		restoreSQL: restoreSQL,
		retries:    retries,
		delay:      delay,
	}
}

// NewGuard builds the guard described by cfg, or a NoopGuard when no statements are configured
func NewGuard(db *sqlx.DB, cfg config.GuardConfig) WriteGuard {
	if cfg.DisableSQL == "" && cfg.RestoreSQL == "" {
		return NoopGuard{}
	}
	return NewPostgresGuard(db, cfg.DisableSQL, cfg.RestoreSQL, cfg.RestoreRetries, cfg.RetryDelay)
}

// Disable lifts the guard
func (g *PostgresGuard) Disable(ctx context.Context) error {
	if _, err := g.db.ExecContext(ctx, g.disableSQL); err != nil {
		return fmt.Errorf("failed to disable write guard: %w", err)
	}
	return nil
}

// Restore reinstates the guard on a dedicated connection with its own
// background context, retrying a bounded number of times
func (g *PostgresGuard) Restore() error {
	var lastErr error
	for attempt := 1; attempt <= g.retries; attempt++ {
		if lastErr = g.restoreOnce(); lastErr == nil {
			return nil
		}
		log.Warn().Err(lastErr).
			Int("attempt", attempt).
			Int("max_attempts", g.retries).
			Str("sql", g.restoreSQL).
			Msg("Write guard restore failed")
		if attempt < g.retries {
			time.Sleep(g.delay)
		}
	}
	return fmt.Errorf("failed to restore write guard after %d attempts: %w", g.retries, lastErr)
}

func (g *PostgresGuard) restoreOnce() error {
	ctx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer cancel()

	conn, err := g.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, g.restoreSQL); err != nil {
		return err
	}
	return nil
}

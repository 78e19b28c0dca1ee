package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const createSqliteRunsQuery = `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		run_id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL,
		requested_at TEXT NOT NULL,
		location_count INTEGER NOT NULL,
		slot_count INTEGER NOT NULL,
		queried_cells INTEGER NOT NULL,
		no_route_cells INTEGER NOT NULL,
		failed_cells INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL
	);
	`

const createPostgresRunsQuery = `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		run_id UUID PRIMARY KEY,
		request_id TEXT NOT NULL,
		requested_at TIMESTAMPTZ NOT NULL,
		location_count INTEGER NOT NULL,
		slot_count INTEGER NOT NULL,
		queried_cells INTEGER NOT NULL,
		no_route_cells INTEGER NOT NULL,
		failed_cells INTEGER NOT NULL,
		elapsed_ms BIGINT NOT NULL
	);
	`

const createRunsIndexQuery = `
	CREATE INDEX IF NOT EXISTS idx_optimization_runs_requested_at
	ON optimization_runs(requested_at);
	`

// Initialize the run log schema. driver selects the dialect ("pgx" or "sqlite").
func InitSchema(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var createRuns string
	switch driver {
	case "pgx":
		createRuns = createPostgresRunsQuery
	case "sqlite":
		createRuns = createSqliteRunsQuery
	default:
		return fmt.Errorf("init schema: unsupported driver %q", driver)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		createRuns,
		createRunsIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

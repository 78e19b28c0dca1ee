package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"traffic-route-service/internal/domain"
)

// SQLite-backed implementation of the RunRecorder port.
// Timestamps are stored as RFC 3339 text in UTC.
type SqliteRunRecorder struct {
	DB *sql.DB
}

func NewSqliteRunRecorder(db *sql.DB) *SqliteRunRecorder {
	return &SqliteRunRecorder{DB: db}
}

func (s *SqliteRunRecorder) RecordRun(ctx context.Context, run domain.RunSummary) error {
	if s.DB == nil {
		return errors.New("run log: db is nil")
	}
	if run.RunID == "" {
		return errors.New("insert run log: run id must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO optimization_runs (
		run_id,
		request_id,
		requested_at,
		location_count,
		slot_count,
		queried_cells,
		no_route_cells,
		failed_cells,
		elapsed_ms
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		run.RunID, run.RequestID, run.RequestedAt.UTC().Format(time.RFC3339Nano),
		run.LocationCount, run.SlotCount, run.QueriedCells, run.NoRouteCells,
		run.FailedCells, run.ElapsedMillis,
	); err != nil {
		return fmt.Errorf("insert run log run_id=%q: %w", run.RunID, err)
	}

	return nil
}

// Return the most recent runs, newest first.
func (s *SqliteRunRecorder) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if s.DB == nil {
		return nil, errors.New("run log: db is nil")
	}

	q := `
	SELECT
		run_id,
		request_id,
		requested_at,
		location_count,
		slot_count,
		queried_cells,
		no_route_cells,
		failed_cells,
		elapsed_ms
	FROM optimization_runs
	ORDER BY requested_at DESC
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query optimization_runs table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RunSummary, 0, limit)
	for rows.Next() {
		var r domain.RunSummary
		var requestedAt string
		if err := rows.Scan(
			&r.RunID, &r.RequestID, &requestedAt, &r.LocationCount, &r.SlotCount,
			&r.QueriedCells, &r.NoRouteCells, &r.FailedCells, &r.ElapsedMillis,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}

		r.RequestedAt, err = time.Parse(time.RFC3339Nano, requestedAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: parse requested_at %q: %w", requestedAt, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return out, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/obs"
)

// SQLRunRecorder is a Postgres-backed implementation of the RunRecorder port.
type SQLRunRecorder struct {
	DB *sql.DB
}

func NewSQLRunRecorder(db *sql.DB) *SQLRunRecorder {
	return &SQLRunRecorder{DB: db}
}

// Store a single optimization run summary.
func (s *SQLRunRecorder) RecordRun(ctx context.Context, run domain.RunSummary) (err error) {
	defer obs.Time(ctx, "runlog.RecordRun")(&err)

	if s.DB == nil {
		return errors.New("run log: db is nil")
	}
	if run.RunID == "" {
		return errors.New("insert run log: run id must not be empty")
	}

	q := `
	INSERT INTO optimization_runs (
		run_id, request_id, requested_at, location_count, slot_count,
		queried_cells, no_route_cells, failed_cells, elapsed_ms
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (run_id) DO NOTHING;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		run.RunID, run.RequestID, run.RequestedAt, run.LocationCount, run.SlotCount,
		run.QueriedCells, run.NoRouteCells, run.FailedCells, run.ElapsedMillis,
	); err != nil {
		return fmt.Errorf("insert run log run_id=%q: %w", run.RunID, err)
	}

	return nil
}

// Return the most recent runs, newest first.
func (s *SQLRunRecorder) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if s.DB == nil {
		return nil, errors.New("run log: db is nil")
	}

	q := `
	SELECT run_id, request_id, requested_at, location_count, slot_count,
		queried_cells, no_route_cells, failed_cells, elapsed_ms
	FROM optimization_runs
	ORDER BY requested_at DESC
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query optimization_runs table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RunSummary, 0, limit)
	for rows.Next() {
		var r domain.RunSummary
		if err := rows.Scan(
			&r.RunID, &r.RequestID, &r.RequestedAt, &r.LocationCount, &r.SlotCount,
			&r.QueriedCells, &r.NoRouteCells, &r.FailedCells, &r.ElapsedMillis,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return out, nil
}

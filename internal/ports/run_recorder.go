package ports

import (
	"context"
	"traffic-route-service/internal/domain"
)

// Port: a sink for optimization audit records.
type RunRecorder interface {
	RecordRun(ctx context.Context, run domain.RunSummary) error
}

package ports

import (
	"context"

	"github.com/charlesmsiegel/claude-tooling/internal/domain"
)

// MetricsExporter exports hook invocation metrics to an external
// observability system.
type MetricsExporter interface {
	// ExportInvocation records metrics for a completed hook run.
	ExportInvocation(ctx context.Context, inv *domain.Invocation) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

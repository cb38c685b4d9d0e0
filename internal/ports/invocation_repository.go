package ports

import (
	"context"

	"github.com/charlesmsiegel/claude-tooling/internal/domain"
)

// InvocationRepository persists hook invocation records.
type InvocationRepository interface {
	// Record saves one invocation. Duplicate IDs are ignored.
	Record(ctx context.Context, inv *domain.Invocation) error
}

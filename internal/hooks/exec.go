package hooks

import (
	"context"

	"github.com/charlesmsiegel/claude-tooling/internal/cmd"
)

// ToolExecutor is the default Executor. Tool stdout is discarded and
// stderr only survives inside the (always swallowed) error.
type ToolExecutor struct{}

func (ToolExecutor) Run(ctx context.Context, dir, name string, args ...string) error {
	return cmd.RunContext(ctx, dir, name, args...)
}

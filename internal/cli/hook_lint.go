package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlesmsiegel/claude-tooling/internal/domain"
)

var hookLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint edited files with ruff, applying safe fixes",
	Long: `File-lint variant. The path list comes from CLAUDE_FILE_PATHS
(whitespace-separated), or from a PostToolUse event on stdin when the
variable is unset. Ruff runs once with --fix, unconditionally, over
that list.

Always exits 0.`,
	RunE: runHookLint,
}

func runHookLint(cmd *cobra.Command, args []string) error {
	paths, dir, event, sessionID := fileTrigger()

	ctx := context.Background()
	app := newHookApp()
	defer app.close(ctx)

	app.lint(ctx, paths, dir, event, sessionID)
	return nil
}

// fileTrigger resolves the edited path list, preferring the legacy
// environment variable over a stdin event. An empty result is valid:
// the format and lint variants invoke their tool regardless.
func fileTrigger() (paths []string, dir, event, sessionID string) {
	if v, ok := os.LookupEnv("CLAUDE_FILE_PATHS"); ok {
		return domain.PathsFromEnvValue(v), "", "PostToolUse", ""
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", "", ""
	}
	parsed, err := domain.ParseHookEvent(input)
	if err != nil {
		return nil, "", "", ""
	}
	e, ok := parsed.(*domain.PostToolUseInput)
	if !ok {
		return nil, "", "", ""
	}
	return domain.EditedPaths(e.ToolName, e.ToolInput), e.Cwd, e.HookEventName, e.SessionID
}

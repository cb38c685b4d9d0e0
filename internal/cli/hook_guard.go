package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlesmsiegel/claude-tooling/internal/domain"
)

var hookGuardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Run pre-commit on staged files before a git commit",
	Long: `Commit-guard variant. The triggering shell command comes from
CLAUDE_TOOL_INPUT, or from a PreToolUse event on stdin when the
variable is unset. If the command contains "git commit" and files are
staged, pre-commit runs scoped to exactly the staged set.

Always exits 0.`,
	RunE: runHookGuard,
}

func runHookGuard(cmd *cobra.Command, args []string) error {
	command, dir, event, sessionID := guardTrigger()
	if command == "" {
		return nil
	}

	ctx := context.Background()
	app := newHookApp()
	defer app.close(ctx)

	app.guard(ctx, command, dir, event, sessionID)
	return nil
}

// guardTrigger resolves the triggering command, preferring the legacy
// environment variable over a stdin event.
func guardTrigger() (command, dir, event, sessionID string) {
	if v, ok := os.LookupEnv("CLAUDE_TOOL_INPUT"); ok {
		return domain.CommandFromEnvValue(v), "", "PreToolUse", ""
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", "", ""
	}
	parsed, err := domain.ParseHookEvent(input)
	if err != nil {
		return "", "", "", ""
	}
	e, ok := parsed.(*domain.PreToolUseInput)
	if !ok || e.ToolName != "Bash" {
		return "", "", "", ""
	}
	return domain.BashCommand(e.ToolInput), e.Cwd, e.HookEventName, e.SessionID
}

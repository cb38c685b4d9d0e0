package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var hookFormatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format edited files with black",
	Long: `File-format variant. The path list comes from CLAUDE_FILE_PATHS
(whitespace-separated), or from a PostToolUse event on stdin when the
variable is unset. Black is invoked once, unconditionally, over that
list.

Always exits 0.`,
	RunE: runHookFormat,
}

func runHookFormat(cmd *cobra.Command, args []string) error {
	paths, dir, event, sessionID := fileTrigger()

	ctx := context.Background()
	app := newHookApp()
	defer app.close(ctx)

	app.format(ctx, paths, dir, event, sessionID)
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "claude-tooling",
	Short: "Claude Code lifecycle hooks for Python projects",
	Long: `claude-tooling implements Claude Code lifecycle hooks: a commit guard
that runs pre-commit over staged files, a black formatter and a ruff
linter for edited files, plus an installer that registers those hooks
in a project's .claude/settings.local.json.

Hook commands never fail: a missing or failing tool is a silent no-op
so the host session is never blocked.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(migrateCmd)
}

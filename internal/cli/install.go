package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlesmsiegel/claude-tooling/internal/installer"
)

var (
	installProfile string
	installTarget  string
)

var installCmd = &cobra.Command{
	Use:   "install [hook-id]...",
	Short: "Register hooks in a project's Claude Code settings",
	Long: `Merges hook entries into <target>/.claude/settings.local.json.

Without arguments all catalog hooks are installed. Specific hooks can
be selected by id, or as a named profile with --profile.

Examples:
  claude-tooling install                     # all hooks, current directory
  claude-tooling install guard               # just the commit guard
  claude-tooling install --profile python    # the python profile
  claude-tooling install -t ~/myproject      # into another project`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installProfile, "profile", "p", "", "hook profile to install")
	installCmd.Flags().StringVarP(&installTarget, "target", "t", "", "target project directory (default: current directory)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	catalog, err := installer.LoadCatalog()
	if err != nil {
		return err
	}

	selected, err := catalog.Resolve(args, installProfile)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println("No hooks selected.")
		return nil
	}

	target := installTarget
	if target == "" {
		if target, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	settingsFile, err := installer.Install(target, selected)
	if err != nil {
		return err
	}

	fmt.Printf("Installing %d hook(s):\n", len(selected))
	for _, h := range selected {
		fmt.Printf("  %s (%s, matcher %q)\n", h.ID, h.Event, h.Matcher)
	}
	fmt.Printf("\nUpdated: %s\n", settingsFile)

	return nil
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charlesmsiegel/claude-tooling/internal/installer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available hooks and profiles",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, err := installer.LoadCatalog()
	if err != nil {
		return err
	}

	fmt.Println("\n=== Available Hooks ===")
	fmt.Println()
	for _, h := range catalog.Hooks {
		requires := "none"
		if len(h.Requires) > 0 {
			requires = strings.Join(h.Requires, ", ")
		}
		fmt.Printf("  %-20s %s\n", h.ID, h.Name)
		fmt.Printf("  %-20s %s\n", "", h.Description)
		fmt.Printf("  %-20s Tags: %s | Requires: %s\n", "", strings.Join(h.Tags, ", "), requires)
		fmt.Println()
	}

	fmt.Println("=== Hook Profiles ===")
	fmt.Println()
	names := make([]string, 0, len(catalog.Profiles))
	for name := range catalog.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := catalog.Profiles[name]
		fmt.Printf("  %-20s %s\n", name, p.Description)
		fmt.Printf("  %-20s Hooks: %s\n", "", strings.Join(p.Hooks, ", "))
		fmt.Println()
	}

	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charlesmsiegel/claude-tooling/internal/adapters/turso"
	"github.com/charlesmsiegel/claude-tooling/internal/config"
	"github.com/charlesmsiegel/claude-tooling/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run invocation-log database migrations",
	Long: `Run migrations on the local invocation log.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down
as needed).

Examples:
  claude-tooling migrate      # Run all pending migrations
  claude-tooling migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Audit.Path == "" {
		return fmt.Errorf("invocation log is disabled (no audit path configured)")
	}

	db, err := turso.NewDB(cfg.Audit.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := migrate.EnsureMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	currentVersion, dirty, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, manual intervention required", currentVersion)
	}

	fmt.Printf("Current version: %d\n", currentVersion)

	if len(args) == 0 {
		if err := migrate.Run(ctx, db); err != nil {
			return err
		}
	} else {
		target, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		if err := migrate.To(ctx, db, target); err != nil {
			return err
		}
	}

	newVersion, _, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get new version: %w", err)
	}
	fmt.Printf("Migrated to version %d\n", newVersion)

	return nil
}

package cli

import (
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/charlesmsiegel/claude-tooling/internal/adapters/otel"
	"github.com/charlesmsiegel/claude-tooling/internal/adapters/turso"
	"github.com/charlesmsiegel/claude-tooling/internal/config"
	"github.com/charlesmsiegel/claude-tooling/internal/domain"
	"github.com/charlesmsiegel/claude-tooling/internal/git"
	"github.com/charlesmsiegel/claude-tooling/internal/hooks"
	"github.com/charlesmsiegel/claude-tooling/internal/migrate"
	"github.com/charlesmsiegel/claude-tooling/internal/ports"
)

// Test seams. When set, newHookApp uses these instead of the real
// database, tool executor and git client.
var (
	testDBOverride   *sql.DB
	testExecOverride hooks.Executor
	testGitOverride  hooks.StagedLister
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle Claude Code hook events",
	Long: `Reads a hook event JSON from stdin and dispatches to the matching
handler: PreToolUse Bash events go to the commit guard, PostToolUse
file-edit events go to the formatter and linter.

Configure Claude Code to call the unified entry point:

  {
    "hooks": {
      "PreToolUse":  [{"matcher": "Bash", "hooks": [{"type": "command", "command": "claude-tooling hook"}]}],
      "PostToolUse": [{"matcher": "Edit|MultiEdit|Write", "hooks": [{"type": "command", "command": "claude-tooling hook"}]}]
    }
  }

The explicit variants (hook guard, hook format, hook lint) also accept
the legacy environment contract: CLAUDE_TOOL_INPUT for the guard and
CLAUDE_FILE_PATHS for format/lint.

Hook commands always exit 0. Tool failures, absent binaries and
malformed input are suppressed so the host session is never blocked.`,
	RunE: runHook,
}

func init() {
	hookCmd.AddCommand(hookGuardCmd)
	hookCmd.AddCommand(hookFormatCmd)
	hookCmd.AddCommand(hookLintCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil
	}

	event, err := domain.ParseHookEvent(input)
	if err != nil {
		// Events we don't understand are not ours to block.
		return nil
	}

	ctx := context.Background()
	app := newHookApp()
	defer app.close(ctx)

	switch e := event.(type) {
	case *domain.PreToolUseInput:
		if e.ToolName != "Bash" {
			return nil
		}
		app.guard(ctx, domain.BashCommand(e.ToolInput), e.Cwd, e.HookEventName, e.SessionID)

	case *domain.PostToolUseInput:
		if !domain.IsFileEditTool(e.ToolName) {
			return nil
		}
		paths := domain.EditedPaths(e.ToolName, e.ToolInput)
		app.format(ctx, paths, e.Cwd, e.HookEventName, e.SessionID)
		app.lint(ctx, paths, e.Cwd, e.HookEventName, e.SessionID)
	}

	return nil
}

// hookApp wires the runner with the best-effort audit log and metrics
// exporter. Construction never fails; unavailable parts degrade to
// no-ops.
type hookApp struct {
	cfg     *config.Config
	runner  *hooks.Runner
	audit   ports.InvocationRepository
	metrics ports.MetricsExporter
	closeDB func()
}

func newHookApp() *hookApp {
	cfg, err := config.Load()
	if err != nil {
		defaults := config.Default()
		cfg = &defaults
	}

	var exec hooks.Executor = hooks.ToolExecutor{}
	if testExecOverride != nil {
		exec = testExecOverride
	}
	var staged hooks.StagedLister = git.Client{}
	if testGitOverride != nil {
		staged = testGitOverride
	}

	app := &hookApp{
		cfg:     cfg,
		runner:  hooks.New(exec, staged, cfg),
		metrics: otel.NewNoOpExporter(),
		closeDB: func() {},
	}

	if testDBOverride != nil {
		app.audit = turso.NewInvocationRepository(testDBOverride)
	} else if cfg.Audit.Enabled && cfg.Audit.Path != "" {
		if db, err := turso.NewDB(cfg.Audit.Path); err == nil {
			if err := migrate.Run(context.Background(), db); err == nil {
				app.audit = turso.NewInvocationRepository(db)
				app.closeDB = func() { _ = db.Close() }
			} else {
				_ = db.Close()
			}
		}
	}

	if cfg.OTel.Enabled {
		if exp, err := otel.NewExporter(context.Background(), cfg.OTel); err == nil {
			app.metrics = exp
		}
	}

	return app
}

func (a *hookApp) close(ctx context.Context) {
	_ = a.metrics.Close(ctx)
	a.closeDB()
}

func (a *hookApp) guard(ctx context.Context, command, dir, event, sessionID string) {
	if a.cfg.HookDisabled(hooks.HookGuard) || command == "" {
		return
	}
	out := a.runner.Guard(ctx, hooks.GuardInput{Command: command, Dir: dir})
	a.record(ctx, out, event, sessionID, dir)
}

func (a *hookApp) format(ctx context.Context, paths []string, dir, event, sessionID string) {
	if a.cfg.HookDisabled(hooks.HookFormat) {
		return
	}
	out := a.runner.Format(ctx, hooks.FileInput{Paths: paths, Dir: dir})
	a.record(ctx, out, event, sessionID, dir)
}

func (a *hookApp) lint(ctx context.Context, paths []string, dir, event, sessionID string) {
	if a.cfg.HookDisabled(hooks.HookLint) {
		return
	}
	out := a.runner.Lint(ctx, hooks.FileInput{Paths: paths, Dir: dir})
	a.record(ctx, out, event, sessionID, dir)
}

// record persists the outcome to the audit log and metrics exporter.
// Both are best-effort: errors here must never affect the exit code.
func (a *hookApp) record(ctx context.Context, out hooks.Outcome, event, sessionID, cwd string) {
	inv := &domain.Invocation{
		ID:         uuid.NewString(),
		Hook:       out.Hook,
		Event:      event,
		Tool:       out.Tool,
		Paths:      out.Paths,
		Action:     string(out.Action),
		Error:      errString(out.Err),
		Duration:   out.Duration,
		SessionID:  sessionID,
		Cwd:        cwd,
		CapturedAt: time.Now().UTC(),
	}

	if a.audit != nil {
		_ = a.audit.Record(ctx, inv)
	}
	_ = a.metrics.ExportInvocation(ctx, inv)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

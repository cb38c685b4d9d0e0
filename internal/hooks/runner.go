// Package hooks implements the hook runner: given an explicit trigger
// context it conditionally invokes exactly one external tool per
// operation and never surfaces a failure to the caller.
//
// The host automation that spawns these hooks must never be blocked by
// a missing or failing formatter/linter, so every operation collapses
// errors into an [Outcome] instead of returning them.
package hooks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charlesmsiegel/claude-tooling/internal/config"
)

// CommitMarker is the substring of a shell command that identifies a
// commit invocation for the guard hook.
const CommitMarker = "git commit"

// Hook identifiers, matching the ids in the install catalog.
const (
	HookGuard  = "guard"
	HookFormat = "format"
	HookLint   = "lint"
)

// Action describes what a hook operation did.
type Action string

const (
	// ActionRan means the external tool was invoked and succeeded.
	ActionRan Action = "ran"
	// ActionSkipped means the trigger condition did not apply.
	ActionSkipped Action = "skipped"
	// ActionFailed means the tool was invoked (or its inputs derived)
	// and something went wrong. The failure is recorded, not raised.
	ActionFailed Action = "failed"
)

// Executor runs an external tool in a working directory.
type Executor interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// StagedLister lists the files staged for the next commit.
type StagedLister interface {
	StagedFiles(ctx context.Context, dir string) ([]string, error)
}

// GuardInput is the trigger context for the commit-guard hook.
type GuardInput struct {
	Command string // the full shell command about to run
	Dir     string // working directory of the triggering session
}

// FileInput is the trigger context for the format and lint hooks.
type FileInput struct {
	Paths []string
	Dir   string
}

// Outcome records what a single hook operation did. Callers may persist
// it but must not treat it as a failure signal.
type Outcome struct {
	Hook     string
	Tool     string
	Action   Action
	Paths    []string
	Duration time.Duration
	Err      error
}

// Runner executes hook operations with explicit inputs. It holds no
// state between invocations.
type Runner struct {
	exec  Executor
	git   StagedLister
	tools config.Tools
	fmt   config.Format
	lint  config.Lint
}

// New creates a Runner.
func New(exec Executor, git StagedLister, cfg *config.Config) *Runner {
	return &Runner{
		exec:  exec,
		git:   git,
		tools: cfg.Tools,
		fmt:   cfg.Format,
		lint:  cfg.Lint,
	}
}

// Guard runs the commit-guard hook. If the command contains the commit
// marker and files are staged, it invokes the pre-commit aggregator
// scoped to exactly the staged set. Anything else is a no-op.
func (r *Runner) Guard(ctx context.Context, in GuardInput) Outcome {
	out := Outcome{Hook: HookGuard, Tool: r.tools.PreCommit}

	if !strings.Contains(in.Command, CommitMarker) {
		out.Action = ActionSkipped
		return out
	}

	staged, err := r.git.StagedFiles(ctx, in.Dir)
	if err != nil {
		out.Action = ActionFailed
		out.Err = err
		return out
	}
	if len(staged) == 0 {
		out.Action = ActionSkipped
		return out
	}

	out.Paths = staged
	args := append([]string{"run", "--files"}, staged...)
	r.invoke(ctx, &out, in.Dir, args)
	return out
}

// Format runs the file-format hook: one black invocation over the
// given paths, unconditionally.
func (r *Runner) Format(ctx context.Context, in FileInput) Outcome {
	out := Outcome{Hook: HookFormat, Tool: r.tools.Black, Paths: in.Paths}

	args := []string{"--line-length", strconv.Itoa(r.fmt.LineLength)}
	args = append(args, r.fmt.ExtraArgs...)
	args = append(args, in.Paths...)
	r.invoke(ctx, &out, in.Dir, args)
	return out
}

// Lint runs the file-lint hook: one ruff invocation with auto-fix over
// the given paths, unconditionally.
func (r *Runner) Lint(ctx context.Context, in FileInput) Outcome {
	out := Outcome{Hook: HookLint, Tool: r.tools.Ruff, Paths: in.Paths}

	args := []string{"check", "--fix"}
	args = append(args, r.lint.ExtraArgs...)
	args = append(args, in.Paths...)
	r.invoke(ctx, &out, in.Dir, args)
	return out
}

// invoke runs the outcome's tool and folds the result into it.
func (r *Runner) invoke(ctx context.Context, out *Outcome, dir string, args []string) {
	start := time.Now()
	err := r.exec.Run(ctx, dir, out.Tool, args...)
	out.Duration = time.Since(start)

	if err != nil {
		out.Action = ActionFailed
		out.Err = err
		return
	}
	out.Action = ActionRan
}

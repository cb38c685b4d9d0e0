package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"testing"

	"github.com/spf13/cobra"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/charlesmsiegel/claude-tooling/internal/hooks"
	"github.com/charlesmsiegel/claude-tooling/internal/migrate"
)

// testDB creates an in-memory database with all migrations applied.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := migrate.Run(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db, func() { db.Close() }
}

type execCall struct {
	dir  string
	name string
	args []string
}

type fakeExec struct {
	calls []execCall
	err   error
}

func (f *fakeExec) Run(ctx context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, execCall{dir: dir, name: name, args: args})
	return f.err
}

type fakeStaged struct {
	files []string
	err   error
}

func (f *fakeStaged) StagedFiles(ctx context.Context, dir string) ([]string, error) {
	return f.files, f.err
}

// setupHookTest isolates config lookup, installs the fakes and an
// in-memory audit database, and registers cleanup.
func setupHookTest(t *testing.T, exec *fakeExec, staged *fakeStaged) *sql.DB {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	db, cleanup := testDB(t)

	testDBOverride = db
	testExecOverride = exec
	testGitOverride = staged
	t.Cleanup(func() {
		testDBOverride = nil
		testExecOverride = nil
		testGitOverride = nil
		cleanup()
	})

	return db
}

// runHookWithInput pipes the given event to stdin and runs the unified
// hook dispatcher.
func runHookWithInput(t *testing.T, input any) error {
	t.Helper()

	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("Failed to marshal input: %v", err)
	}
	return runHookWithRawInput(t, data)
}

func runHookWithRawInput(t *testing.T, data []byte) error {
	t.Helper()
	return runWithStdin(t, runHook, data)
}

// runCommandWithInput pipes the given event to stdin and runs an
// arbitrary command handler.
func runCommandWithInput(t *testing.T, run func(*cobra.Command, []string) error, input any) error {
	t.Helper()

	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("Failed to marshal input: %v", err)
	}
	return runWithStdin(t, run, data)
}

func runWithStdin(t *testing.T, run func(*cobra.Command, []string) error, data []byte) error {
	t.Helper()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdin = r
	go func() {
		_, _ = w.Write(data)
		_ = w.Close()
	}()

	return run(nil, nil)
}

func assertEqual[T comparable](t *testing.T, name string, want, got T) {
	t.Helper()
	if want != got {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}

var _ hooks.Executor = (*fakeExec)(nil)
var _ hooks.StagedLister = (*fakeStaged)(nil)

package turso

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/charlesmsiegel/claude-tooling/internal/domain"
	"github.com/charlesmsiegel/claude-tooling/internal/migrate"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate.Run(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func sampleInvocation(id string) *domain.Invocation {
	return &domain.Invocation{
		ID:         id,
		Hook:       "guard",
		Event:      "PreToolUse",
		Tool:       "pre-commit",
		Paths:      []string{"a.py", "b.py"},
		Action:     "ran",
		Duration:   1200 * time.Millisecond,
		SessionID:  "sess-1",
		Cwd:        "/project",
		CapturedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordAndListByHook(t *testing.T) {
	repo := NewInvocationRepository(testDB(t))
	ctx := context.Background()

	if err := repo.Record(ctx, sampleInvocation("inv-1")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := repo.ListByHook(ctx, "guard")
	if err != nil {
		t.Fatalf("ListByHook failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(got))
	}

	inv := got[0]
	if inv.ID != "inv-1" || inv.Tool != "pre-commit" || inv.Action != "ran" {
		t.Errorf("unexpected invocation: %+v", inv)
	}
	if len(inv.Paths) != 2 || inv.Paths[0] != "a.py" {
		t.Errorf("paths not round-tripped: %v", inv.Paths)
	}
	if inv.Duration != 1200*time.Millisecond {
		t.Errorf("duration not round-tripped: %v", inv.Duration)
	}
	if inv.SessionID != "sess-1" || inv.Cwd != "/project" {
		t.Errorf("session metadata lost: %+v", inv)
	}
}

func TestRecord_DuplicateIDIgnored(t *testing.T) {
	repo := NewInvocationRepository(testDB(t))
	ctx := context.Background()

	if err := repo.Record(ctx, sampleInvocation("inv-dup")); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	if err := repo.Record(ctx, sampleInvocation("inv-dup")); err != nil {
		t.Fatalf("duplicate Record failed: %v", err)
	}

	got, err := repo.ListByHook(ctx, "guard")
	if err != nil {
		t.Fatalf("ListByHook failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected duplicate to be ignored, got %d rows", len(got))
	}
}

func TestListByHook_FiltersByHook(t *testing.T) {
	repo := NewInvocationRepository(testDB(t))
	ctx := context.Background()

	guard := sampleInvocation("inv-g")
	format := sampleInvocation("inv-f")
	format.Hook = "format"
	format.Tool = "black"

	if err := repo.Record(ctx, guard); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := repo.Record(ctx, format); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := repo.ListByHook(ctx, "format")
	if err != nil {
		t.Fatalf("ListByHook failed: %v", err)
	}
	if len(got) != 1 || got[0].Tool != "black" {
		t.Errorf("expected only the format invocation, got %+v", got)
	}
}

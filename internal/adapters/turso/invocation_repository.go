package turso

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charlesmsiegel/claude-tooling/internal/domain"
)

// InvocationRepository stores hook invocation records.
type InvocationRepository struct {
	db *sql.DB
}

func NewInvocationRepository(db *sql.DB) *InvocationRepository {
	return &InvocationRepository{db: db}
}

// Record saves one invocation. Duplicate IDs are ignored.
func (r *InvocationRepository) Record(ctx context.Context, inv *domain.Invocation) error {
	paths, err := json.Marshal(inv.Paths)
	if err != nil {
		paths = []byte("[]")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO invocations
		 (id, hook, event, tool, paths, action, error, duration_ms, session_id, cwd, captured_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Hook, inv.Event, inv.Tool, string(paths), inv.Action, inv.Error,
		inv.Duration.Milliseconds(), inv.SessionID, inv.Cwd,
		inv.CapturedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert invocation: %w", err)
	}
	return nil
}

// ListByHook returns recorded invocations for a hook, newest first.
func (r *InvocationRepository) ListByHook(ctx context.Context, hook string) ([]*domain.Invocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, hook, event, tool, paths, action, error, duration_ms, session_id, cwd, captured_at
		 FROM invocations WHERE hook = ? ORDER BY captured_at DESC`, hook)
	if err != nil {
		return nil, fmt.Errorf("failed to list invocations: %w", err)
	}
	defer rows.Close()

	var result []*domain.Invocation
	for rows.Next() {
		var inv domain.Invocation
		var paths, capturedAt string
		var durationMS int64
		if err := rows.Scan(&inv.ID, &inv.Hook, &inv.Event, &inv.Tool, &paths, &inv.Action,
			&inv.Error, &durationMS, &inv.SessionID, &inv.Cwd, &capturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invocation: %w", err)
		}
		_ = json.Unmarshal([]byte(paths), &inv.Paths)
		inv.Duration = time.Duration(durationMS) * time.Millisecond
		inv.CapturedAt, _ = time.Parse(time.RFC3339, capturedAt)
		result = append(result, &inv)
	}
	return result, rows.Err()
}

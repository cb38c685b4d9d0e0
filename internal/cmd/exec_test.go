package cmd

import (
	"context"
	"strings"
	"testing"
)

func TestOutputContext(t *testing.T) {
	out, err := OutputContext(context.Background(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}

func TestRunContext_StderrInError(t *testing.T) {
	err := RunContext(context.Background(), "", "sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected stderr in error, got %q", err.Error())
	}
}

func TestRunContext_MissingBinary(t *testing.T) {
	err := RunContext(context.Background(), "", "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRunContext_Dir(t *testing.T) {
	dir := t.TempDir()
	out, err := OutputContext(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(string(out)); !strings.HasSuffix(got, dir) && got != dir {
		t.Errorf("expected command to run in %s, got %s", dir, got)
	}
}

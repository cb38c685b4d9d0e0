package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBashCommand(t *testing.T) {
	got := BashCommand(json.RawMessage(`{"command": "ls -la", "timeout": 5000}`))
	if got != "ls -la" {
		t.Errorf("expected %q, got %q", "ls -la", got)
	}

	if got := BashCommand(json.RawMessage(`not json`)); got != "" {
		t.Errorf("expected empty command for malformed input, got %q", got)
	}
}

func TestEditedPaths(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		toolInput string
		want      []string
	}{
		{"edit", "Edit", `{"file_path": "/p/a.py"}`, []string{"/p/a.py"}},
		{"write", "Write", `{"file_path": "/p/b.py", "content": "x"}`, []string{"/p/b.py"}},
		{"multi edit", "MultiEdit", `{"file_path": "/p/c.py", "edits": []}`, []string{"/p/c.py"}},
		{"notebook", "NotebookEdit", `{"notebook_path": "/p/n.ipynb"}`, []string{"/p/n.ipynb"}},
		{"non file tool", "Bash", `{"command": "ls"}`, nil},
		{"missing path", "Edit", `{}`, nil},
		{"malformed", "Edit", `nope`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EditedPaths(tt.tool, json.RawMessage(tt.toolInput))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsFileEditTool(t *testing.T) {
	if !IsFileEditTool("Edit") {
		t.Error("Edit should be a file edit tool")
	}
	if IsFileEditTool("Bash") {
		t.Error("Bash should not be a file edit tool")
	}
}

func TestCommandFromEnvValue(t *testing.T) {
	if got := CommandFromEnvValue("git commit -m test"); got != "git commit -m test" {
		t.Errorf("raw command mangled: %q", got)
	}
	if got := CommandFromEnvValue(`{"command": "git commit -m json"}`); got != "git commit -m json" {
		t.Errorf("JSON form not extracted: %q", got)
	}
	// A brace-prefixed value that isn't tool_input JSON stays as-is.
	if got := CommandFromEnvValue(`{weird shell text`); got != `{weird shell text` {
		t.Errorf("non-JSON value mangled: %q", got)
	}
}

func TestPathsFromEnvValue(t *testing.T) {
	got := PathsFromEnvValue("  a.py\tb.py\nc.py ")
	want := []string{"a.py", "b.py", "c.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := PathsFromEnvValue(""); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

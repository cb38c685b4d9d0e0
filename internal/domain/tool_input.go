package domain

import (
	"encoding/json"
	"strings"
)

// fileEditTools maps tool names to the tool_input field holding the edited path.
var fileEditTools = map[string]string{
	"Edit":         "file_path",
	"MultiEdit":    "file_path",
	"Write":        "file_path",
	"NotebookEdit": "notebook_path",
}

// IsFileEditTool reports whether the named tool edits files on disk.
func IsFileEditTool(toolName string) bool {
	_, ok := fileEditTools[toolName]
	return ok
}

// BashCommand extracts the shell command from a Bash tool_input payload.
// Returns "" if the payload is not valid JSON or has no command field.
func BashCommand(toolInput json.RawMessage) string {
	var in struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(toolInput, &in); err != nil {
		return ""
	}
	return in.Command
}

// EditedPaths extracts the file paths touched by a file-editing tool.
// Unknown tools and malformed payloads yield an empty slice.
func EditedPaths(toolName string, toolInput json.RawMessage) []string {
	field, ok := fileEditTools[toolName]
	if !ok {
		return nil
	}

	var in map[string]json.RawMessage
	if err := json.Unmarshal(toolInput, &in); err != nil {
		return nil
	}

	var path string
	if raw, ok := in[field]; ok {
		_ = json.Unmarshal(raw, &path)
	}
	if path == "" {
		return nil
	}
	return []string{path}
}

// CommandFromEnvValue interprets the legacy CLAUDE_TOOL_INPUT value.
// Older hosts exported the raw command string; newer ones export the
// tool_input JSON object. Both forms are accepted.
func CommandFromEnvValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		if cmd := BashCommand(json.RawMessage(trimmed)); cmd != "" {
			return cmd
		}
	}
	return value
}

// PathsFromEnvValue splits the legacy CLAUDE_FILE_PATHS value, a
// whitespace-separated path list.
func PathsFromEnvValue(value string) []string {
	return strings.Fields(value)
}

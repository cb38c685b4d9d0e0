package domain

import (
	"encoding/json"
	"fmt"
)

// HookEventBase contains fields common to all hook events from Claude Code.
type HookEventBase struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	PermissionMode string `json:"permission_mode"`
	HookEventName  string `json:"hook_event_name"`
}

// PreToolUseInput is sent before a tool runs. For the Bash tool the
// command about to execute is in ToolInput.
type PreToolUseInput struct {
	HookEventBase
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	ToolUseID string          `json:"tool_use_id"`
}

// PostToolUseInput is sent after a tool has run.
type PostToolUseInput struct {
	HookEventBase
	ToolName     string          `json:"tool_name"`
	ToolInput    json.RawMessage `json:"tool_input"`
	ToolResponse json.RawMessage `json:"tool_response"`
	ToolUseID    string          `json:"tool_use_id"`
}

// ParseHookEvent parses raw JSON into the appropriate typed event struct.
func ParseHookEvent(data []byte) (any, error) {
	var base HookEventBase
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("failed to parse hook event: %w", err)
	}

	if base.HookEventName == "" {
		return nil, fmt.Errorf("missing hook_event_name")
	}

	switch base.HookEventName {
	case "PreToolUse":
		var event PreToolUseInput
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, fmt.Errorf("failed to parse PreToolUse event: %w", err)
		}
		return &event, nil

	case "PostToolUse":
		var event PostToolUseInput
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, fmt.Errorf("failed to parse PostToolUse event: %w", err)
		}
		return &event, nil

	default:
		return nil, fmt.Errorf("unknown hook event: %s", base.HookEventName)
	}
}

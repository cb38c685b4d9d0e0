package installer

import (
	"encoding/json"
	"fmt"
)

// SettingsEntry is one command entry inside a settings hook group.
type SettingsEntry struct {
	Type          string `json:"type"`
	Command       string `json:"command"`
	StatusMessage string `json:"statusMessage,omitempty"`
}

// MatcherGroup groups hook entries under a tool matcher.
type MatcherGroup struct {
	Matcher string          `json:"matcher"`
	Hooks   []SettingsEntry `json:"hooks"`
}

// MergeSettings merges generated hook entries into an existing
// settings.local.json document. Entries are grouped by event then
// matcher, deduplicated by command, and all unrelated keys in the
// existing document are preserved. An empty existing document is valid.
func MergeSettings(existing []byte, hooks []Hook) ([]byte, error) {
	doc := map[string]json.RawMessage{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse existing settings: %w", err)
		}
	}

	events := map[string][]MatcherGroup{}
	if raw, ok := doc["hooks"]; ok {
		if err := json.Unmarshal(raw, &events); err != nil {
			return nil, fmt.Errorf("failed to parse existing hooks section: %w", err)
		}
	}

	for _, h := range hooks {
		entry := SettingsEntry{
			Type:          "command",
			Command:       h.Command,
			StatusMessage: h.StatusMessage,
		}
		events[h.Event] = addEntry(events[h.Event], h.Matcher, entry)
	}

	if len(events) > 0 {
		raw, err := json.Marshal(events)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal hooks section: %w", err)
		}
		doc["hooks"] = raw
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return append(out, '\n'), nil
}

// addEntry places entry under the group with the given matcher,
// creating the group if needed and skipping duplicate commands.
func addEntry(groups []MatcherGroup, matcher string, entry SettingsEntry) []MatcherGroup {
	for i, g := range groups {
		if g.Matcher != matcher {
			continue
		}
		for _, e := range g.Hooks {
			if e.Command == entry.Command {
				return groups
			}
		}
		groups[i].Hooks = append(groups[i].Hooks, entry)
		return groups
	}
	return append(groups, MatcherGroup{Matcher: matcher, Hooks: []SettingsEntry{entry}})
}

// Package installer registers hooks from the embedded catalog into a
// project's .claude/settings.local.json.
package installer

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogJSON []byte

// Hook is one installable hook from the catalog.
type Hook struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Event         string   `json:"event"`
	Matcher       string   `json:"matcher"`
	Command       string   `json:"command"`
	StatusMessage string   `json:"statusMessage"`
	Tags          []string `json:"tags"`
	Requires      []string `json:"requires"`
}

// Profile is a named hook subset.
type Profile struct {
	Description string   `json:"description"`
	Hooks       []string `json:"hooks"`
}

// Catalog holds all installable hooks and profiles.
type Catalog struct {
	Hooks    []Hook             `json:"hooks"`
	Profiles map[string]Profile `json:"profiles"`
}

// LoadCatalog parses the embedded hook catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return &c, nil
}

// Resolve selects hooks by explicit ids or by profile. With neither,
// all hooks are returned. Unknown ids are skipped; an unknown profile
// is an error.
func (c *Catalog) Resolve(ids []string, profile string) ([]Hook, error) {
	byID := make(map[string]Hook, len(c.Hooks))
	for _, h := range c.Hooks {
		byID[h.ID] = h
	}

	if profile != "" {
		p, ok := c.Profiles[profile]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", profile)
		}
		ids = p.Hooks
	} else if len(ids) == 0 {
		for _, h := range c.Hooks {
			ids = append(ids, h.ID)
		}
	}

	var result []Hook
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			result = append(result, h)
		}
	}
	return result, nil
}

// Package git queries the version-control staging index via the git CLI.
package git

import (
	"context"
	"strings"

	"github.com/charlesmsiegel/claude-tooling/internal/cmd"
)

// Client runs git commands in a working directory.
type Client struct{}

// StagedFiles returns the paths staged for the next commit in dir.
// Deleted files are excluded since downstream tools cannot operate on them.
func (Client) StagedFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := cmd.OutputContext(ctx, dir, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

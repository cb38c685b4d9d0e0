package domain

import "time"

// Invocation is the audit record for a single hook run.
type Invocation struct {
	ID         string
	Hook       string
	Event      string
	Tool       string
	Paths      []string
	Action     string
	Error      string
	Duration   time.Duration
	SessionID  string
	Cwd        string
	CapturedAt time.Time
}

package model

import "context"

// BreakdownClient splits a task description into smaller subtask strings.
// It degrades to an empty list on failure instead of returning an error.
type BreakdownClient interface {
	Breakdown(ctx context.Context, text string) []string
}

package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for per-user task collections.
type TaskStore interface {
	Load(ctx context.Context, userID string) ([]Task, error)
	Save(ctx context.Context, userID string, tasks []Task) error
}

// Task represents one user-visible to-do entry.
// Field tags match the stored JSON format.
type Task struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Completed     bool   `json:"completed"`
	CreatedAt     int64  `json:"createdAt"`
	IsAIGenerated bool   `json:"isAiGenerated,omitempty"`
}

// NewTaskID builds a task ID from the creation time and a random component.
// Uniqueness is best-effort, sufficient for a single device.
func NewTaskID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// taskKeyPrefix keys each user's collection separately so switching accounts
// on the same device never mixes collections.
const taskKeyPrefix = "todos_"

var _ model.TaskStore = (*Task)(nil)

// Task persists per-user ordered task collections in the key-value store.
// Every save is a full-collection overwrite, last writer wins.
type Task struct {
	kv     model.KV
	logger *logger.Logger
}

func NewTask(kv model.KV, logger *logger.Logger) *Task {
	return &Task{
		kv:     kv,
		logger: logger,
	}
}

func taskKey(userID string) string {
	return taskKeyPrefix + userID
}

// Load returns the user's ordered task collection. A missing key or an
// unparseable stored value yields an empty collection, never a startup
// failure.
func (s *Task) Load(ctx context.Context, userID string) ([]model.Task, error) {
	value, err := s.kv.Get(ctx, taskKey(userID))
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks for user %s: %w", userID, err)
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		s.logger.Warn("Task store: discarding malformed task collection",
			"user_id", userID,
			"error", err.Error())
		return nil, nil
	}

	return tasks, nil
}

// Save overwrites the user's full task collection.
func (s *Task) Save(ctx context.Context, userID string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if err := s.kv.Set(ctx, taskKey(userID), string(data)); err != nil {
		return fmt.Errorf("failed to save tasks for user %s: %w", userID, err)
	}

	return nil
}

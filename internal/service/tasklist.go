package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// TaskList orchestrates per-user task mutations. Every mutation is a
// read-modify-write of the user's full collection and is persisted before
// the operation returns. A per-user lock keeps overlapping mutations,
// including breakdown appends, from interleaving within one collection.
type TaskList struct {
	tasks    model.TaskStore
	sessions model.SessionStore
	ai       model.BreakdownClient
	logger   *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTaskList(
	tasks model.TaskStore,
	sessions model.SessionStore,
	ai model.BreakdownClient,
	logger *logger.Logger,
) *TaskList {
	return &TaskList{
		tasks:    tasks,
		sessions: sessions,
		ai:       ai,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *TaskList) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// List returns the user's ordered task collection.
func (s *TaskList) List(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.tasks.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return tasks, nil
}

// Add appends a task with the trimmed text to the end of the user's
// collection. Whitespace-only text is silently rejected; the second return
// value reports whether a task was created.
func (s *TaskList) Add(ctx context.Context, userID, text string, aiGenerated bool) (model.Task, bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, false, nil
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.append(ctx, userID, trimmed, aiGenerated)
}

// append persists a new task at the end of the collection. Callers must hold
// the user's lock and pass non-empty trimmed text.
func (s *TaskList) append(ctx context.Context, userID, trimmed string, aiGenerated bool) (model.Task, bool, error) {
	tasks, err := s.tasks.Load(ctx, userID)
	if err != nil {
		return model.Task{}, false, fmt.Errorf("failed to load tasks: %w", err)
	}

	now := time.Now()
	task := model.Task{
		ID:            model.NewTaskID(now),
		Text:          trimmed,
		Completed:     false,
		CreatedAt:     now.UnixMilli(),
		IsAIGenerated: aiGenerated,
	}
	tasks = append(tasks, task)

	if err := s.tasks.Save(ctx, userID, tasks); err != nil {
		return model.Task{}, false, fmt.Errorf("failed to save tasks: %w", err)
	}

	return task, true, nil
}

// Toggle flips the completion state of the task with the given ID. The
// second return value is false when no task matches.
func (s *TaskList) Toggle(ctx context.Context, userID, taskID string) (model.Task, bool, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	tasks, err := s.tasks.Load(ctx, userID)
	if err != nil {
		return model.Task{}, false, fmt.Errorf("failed to load tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}

		tasks[i].Completed = !tasks[i].Completed
		if err := s.tasks.Save(ctx, userID, tasks); err != nil {
			return model.Task{}, false, fmt.Errorf("failed to save tasks: %w", err)
		}
		return tasks[i], true, nil
	}

	return model.Task{}, false, nil
}

// Delete removes the task with the given ID, leaving the relative order of
// the remaining tasks unchanged. The return value is false when no task
// matches.
func (s *TaskList) Delete(ctx context.Context, userID, taskID string) (bool, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	tasks, err := s.tasks.Load(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}

		tasks = append(tasks[:i], tasks[i+1:]...)
		if err := s.tasks.Save(ctx, userID, tasks); err != nil {
			return false, fmt.Errorf("failed to save tasks: %w", err)
		}
		return true, nil
	}

	return false, nil
}

// Breakdown adds the original task, asks the breakdown client for subtasks
// and appends each one with the provenance flag set, preserving order. The
// original task is always kept; a failed or empty suggestion list leaves it
// as the only addition. Suggestions are dropped when the active session user
// changed while the call was in flight, so a sign-out cannot leak subtasks
// into an inactive user's collection.
func (s *TaskList) Breakdown(ctx context.Context, userID, text string) ([]model.Task, error) {
	original, created, err := s.Add(ctx, userID, text, false)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, nil
	}

	added := []model.Task{original}

	// The network call happens outside the user lock.
	subtasks := s.ai.Breakdown(ctx, original.Text)
	if len(subtasks) == 0 {
		return added, nil
	}

	if active, ok := s.sessions.Load(ctx); !ok || active.ID != userID {
		s.logger.Warn("Task list service: active user changed during breakdown, dropping suggestions",
			"user_id", userID)
		return added, nil
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	for _, subtask := range subtasks {
		trimmed := strings.TrimSpace(subtask)
		if trimmed == "" {
			continue
		}

		task, _, err := s.append(ctx, userID, trimmed, true)
		if err != nil {
			return added, err
		}
		added = append(added, task)
	}

	return added, nil
}

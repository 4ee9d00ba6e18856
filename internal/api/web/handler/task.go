package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// TaskListService describes the task operations the handler exposes.
type TaskListService interface {
	List(ctx context.Context, userID string) ([]model.Task, error)
	Add(ctx context.Context, userID, text string, aiGenerated bool) (model.Task, bool, error)
	Toggle(ctx context.Context, userID, taskID string) (model.Task, bool, error)
	Delete(ctx context.Context, userID, taskID string) (bool, error)
	Breakdown(ctx context.Context, userID, text string) ([]model.Task, error)
}

// Task serves the task endpoints. All routes require an authenticated user
// in the request context.
type Task struct {
	taskService    TaskListService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler instance.
func NewTask(taskService TaskListService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Task) user(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
	}
	return user, ok
}

// List returns the user's full task collection.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(r.Context(), user.ID)
	if err != nil {
		handleError(w, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

type addTaskRequest struct {
	Text string `json:"text"`
}

// Add creates a task from the request text. Whitespace-only text is
// accepted but creates nothing.
func (h *Task) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, created, err := h.taskService.Add(r.Context(), user.ID, req.Text, false)
	if err != nil {
		handleError(w, err)
		return
	}
	if !created {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// Toggle flips the completion state of the addressed task.
func (h *Task) Toggle(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	task, found, err := h.taskService.Toggle(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Delete removes the addressed task.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	found, err := h.taskService.Delete(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Breakdown creates the task and its AI-suggested subtasks, returning every
// task that was added.
func (h *Task) Breakdown(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.taskService.Breakdown(r.Context(), user.ID, req.Text)
	if err != nil {
		handleError(w, err)
		return
	}
	if added == nil {
		added = []model.Task{}
	}

	writeJSON(w, http.StatusOK, added)
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	webctx "smartdo/internal/api/web/context"
	"smartdo/internal/mocks"
	"smartdo/internal/model"
	"smartdo/internal/testutil"
)

func newTaskRequest(t *testing.T, cm model.ContextManager, method, target, body string, user *model.User) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != nil {
		req = req.WithContext(cm.SetUserToContext(req.Context(), *user))
	}
	return req
}

func TestTask_List(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("List", mock.Anything, "u1").Return([]model.Task{{ID: "1", Text: "buy milk", CreatedAt: 1700000000000}}, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, newTaskRequest(t, cm, http.MethodGet, "/api/tasks", "", &user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"1","text":"buy milk","completed":false,"createdAt":1700000000000}]`, rec.Body.String())
}

func TestTask_List_EmptyIsArray(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("List", mock.Anything, "u1").Return(nil, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, newTaskRequest(t, cm, http.MethodGet, "/api/tasks", "", &user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTask_List_NoUser(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, newTaskRequest(t, cm, http.MethodGet, "/api/tasks", "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTask_Add(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	task := model.Task{ID: "1", Text: "buy milk", CreatedAt: 1700000000000}
	svc.On("Add", mock.Anything, "u1", "buy milk", false).Return(task, true, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Add(rec, newTaskRequest(t, cm, http.MethodPost, "/api/tasks", `{"text":"buy milk"}`, &user))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1","text":"buy milk","completed":false,"createdAt":1700000000000}`, rec.Body.String())
}

func TestTask_Add_WhitespaceOnly(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("Add", mock.Anything, "u1", "   ", false).Return(model.Task{}, false, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Add(rec, newTaskRequest(t, cm, http.MethodPost, "/api/tasks", `{"text":"   "}`, &user))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTask_Add_BadBody(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Add(rec, newTaskRequest(t, cm, http.MethodPost, "/api/tasks", "{broken", &user))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTask_Toggle(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	task := model.Task{ID: "t1", Text: "buy milk", Completed: true, CreatedAt: 1700000000000}
	svc.On("Toggle", mock.Anything, "u1", "t1").Return(task, true, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	req := newTaskRequest(t, cm, http.MethodPost, "/api/tasks/t1/toggle", "", &user)
	req.SetPathValue("id", "t1")

	rec := httptest.NewRecorder()
	h.Toggle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"t1","text":"buy milk","completed":true,"createdAt":1700000000000}`, rec.Body.String())
}

func TestTask_Toggle_NotFound(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("Toggle", mock.Anything, "u1", "absent").Return(model.Task{}, false, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	req := newTaskRequest(t, cm, http.MethodPost, "/api/tasks/absent/toggle", "", &user)
	req.SetPathValue("id", "absent")

	rec := httptest.NewRecorder()
	h.Toggle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_Delete(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("Delete", mock.Anything, "u1", "t1").Return(true, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	req := newTaskRequest(t, cm, http.MethodDelete, "/api/tasks/t1", "", &user)
	req.SetPathValue("id", "t1")

	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTask_Delete_NotFound(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("Delete", mock.Anything, "u1", "absent").Return(false, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	req := newTaskRequest(t, cm, http.MethodDelete, "/api/tasks/absent", "", &user)
	req.SetPathValue("id", "absent")

	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_Breakdown(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	added := []model.Task{
		{ID: "1", Text: "Plan a party", CreatedAt: 1700000000000},
		{ID: "2", Text: "Book venue", CreatedAt: 1700000000001, IsAIGenerated: true},
	}
	svc.On("Breakdown", mock.Anything, "u1", "Plan a party").Return(added, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Breakdown(rec, newTaskRequest(t, cm, http.MethodPost, "/api/tasks/breakdown", `{"text":"Plan a party"}`, &user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":"1","text":"Plan a party","completed":false,"createdAt":1700000000000},
		{"id":"2","text":"Book venue","completed":false,"createdAt":1700000000001,"isAiGenerated":true}
	]`, rec.Body.String())
}

func TestTask_Breakdown_WhitespaceOnly(t *testing.T) {
	svc := mocks.NewTaskListService(t)
	cm := webctx.NewManager()
	user := model.User{ID: "u1"}

	svc.On("Breakdown", mock.Anything, "u1", "  ").Return(nil, nil)

	h := NewTask(svc, cm, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Breakdown(rec, newTaskRequest(t, cm, http.MethodPost, "/api/tasks/breakdown", `{"text":"  "}`, &user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

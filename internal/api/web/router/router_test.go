package router

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	webctx "smartdo/internal/api/web/context"
	"smartdo/internal/kv"
	"smartdo/internal/mocks"
	"smartdo/internal/model"
	"smartdo/internal/service"
	"smartdo/internal/store"
	"smartdo/internal/testutil"
	"smartdo/internal/token"
)

// newTestServer wires the full stack over in-memory storage with a mocked
// breakdown client, matching the production wiring in cmd/main.go.
func newTestServer(t *testing.T) (*httptest.Server, *mocks.BreakdownClient) {
	t.Helper()

	log := testutil.MakeNoopLogger()
	mem := kv.NewMemory()
	sessions := store.NewSession(mem, log)
	tasks := store.NewTask(mem, log)
	ai := mocks.NewBreakdownClient(t)
	provider := mocks.NewIdentityProvider(t)
	provider.On("DisableAutoSelect", mock.Anything).Return(nil).Maybe()

	authService := service.NewAuth(sessions, token.NewDecoder(""), provider, log)
	taskService := service.NewTaskList(tasks, sessions, ai, log)

	r := New(authService, taskService, sessions, webctx.NewManager(), log)
	srv := httptest.NewServer(r.Register())
	t.Cleanup(srv.Close)

	return srv, ai
}

func makeCredential(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".c2ln"
}

func signIn(t *testing.T, srv *httptest.Server, userID string) {
	t.Helper()

	credential := makeCredential(t, map[string]any{"sub": userID, "name": "Ana Lee", "email": "ana@example.com"})
	resp, err := http.Post(srv.URL+"/api/auth/credential", "application/json",
		strings.NewReader(`{"credential":"`+credential+`"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestRouter_TasksRequireSession(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/tasks")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_CurrentUserWithoutSession(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/auth/user")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_SignInAndManageTasks(t *testing.T) {
	srv, _ := newTestServer(t)
	signIn(t, srv, "u1")

	// session survives across requests
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/auth/user", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user model.User
	require.NoError(t, json.Unmarshal(body, &user))
	assert.Equal(t, "u1", user.ID)

	// add a task
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/tasks", `{"text":" buy milk "}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Task
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "buy milk", created.Text)

	// toggle it
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/tasks/"+created.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled model.Task
	require.NoError(t, json.Unmarshal(body, &toggled))
	assert.True(t, toggled.Completed)

	// list shows it
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []model.Task
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Completed)

	// delete it
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/tasks/"+created.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed = nil
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Empty(t, listed)
}

func TestRouter_Breakdown(t *testing.T) {
	srv, ai := newTestServer(t)
	signIn(t, srv, "u1")

	ai.On("Breakdown", mock.Anything, "Plan a party").Return([]string{"Book venue", "Send invites"})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/tasks/breakdown", `{"text":"Plan a party"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var added []model.Task
	require.NoError(t, json.Unmarshal(body, &added))
	require.Len(t, added, 3)
	assert.Equal(t, "Plan a party", added[0].Text)
	assert.False(t, added[0].IsAIGenerated)
	assert.Equal(t, "Book venue", added[1].Text)
	assert.True(t, added[1].IsAIGenerated)
	assert.Equal(t, "Send invites", added[2].Text)
	assert.True(t, added[2].IsAIGenerated)
}

func TestRouter_SignOutEndsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	signIn(t, srv, "u1")

	resp, err := http.Post(srv.URL+"/api/auth/signout", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/tasks")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_InvalidCredentialRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/auth/credential", "application/json",
		strings.NewReader(`{"credential":"garbage"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

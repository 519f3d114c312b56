package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pylearn/internal/config"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app      *fiber.App
	sessions *session.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := store.Open(store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		TokenSecret: "testsecret",
		TokenTTL:    time.Hour,
		CORSOrigins: "*",
	}
	sessions := session.NewManager(session.ManagerOptions{
		Store: session.Options{Journal: db.ActivityRepo()},
	})
	return &testServer{
		app:      New(Deps{Config: cfg, Sessions: sessions}),
		sessions: sessions,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()

	status, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "johndoe"})
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var data struct {
		Token     string `json:"token"`
		SessionID string `json:"sessionId"`
		User      struct {
			Username string `json:"username"`
			Name     string `json:"name"`
			Points   int    `json:"points"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Johndoe", data.User.Name)
	assert.Equal(t, 1250, data.User.Points)
	assert.Equal(t, 1, s.sessions.Len())

	_, ok := s.sessions.Get(data.SessionID)
	assert.True(t, ok)
}

func TestLoginEmptyUsername(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Please enter a username", env.Message)
	assert.Equal(t, 0, s.sessions.Len())
}

func TestRequiresToken(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodGet, "/api/stages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(t, http.MethodGet, "/api/stages", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	other := NewTokenIssuer("othersecret", time.Hour)
	forged, err := other.Issue("whatever")
	require.NoError(t, err)
	status, _ = s.do(t, http.MethodGet, "/api/stages", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLogout(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	status, env := s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, 0, s.sessions.Len())

	status, _ = s.do(t, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestStages(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	status, env := s.do(t, http.MethodGet, "/api/stages", token, nil)
	require.Equal(t, http.StatusOK, status)

	var stages []struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stages))
	require.Len(t, stages, 3)
	assert.Equal(t, "completed", stages[0].Status)
	assert.Equal(t, "in_progress", stages[1].Status)
	assert.Equal(t, "locked", stages[2].Status)

	status, _ = s.do(t, http.MethodGet, "/api/stages/9", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodGet, "/api/stages/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStageContent(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	for path, want := range map[string]int{
		"/api/stages/2/lessons":   3,
		"/api/stages/2/problems":  3,
		"/api/stages/2/projects":  2,
		"/api/stages/2/resources": 5,
	} {
		status, env := s.do(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, status, path)

		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &items), path)
		assert.Len(t, items, want, path)
	}

	status, _ := s.do(t, http.MethodGet, "/api/stages/7/lessons", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCompleteLesson(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	status, env := s.do(t, http.MethodPatch, "/api/lessons/2/complete", token, map[string]bool{"isCompleted": true})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Lesson completed! Great job!", env.Message)

	var lesson struct {
		IsCompleted bool   `json:"isCompleted"`
		State       string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &lesson))
	assert.True(t, lesson.IsCompleted)
	assert.Equal(t, "completed", lesson.State)

	// Repeating is a no-op.
	status, _ = s.do(t, http.MethodPatch, "/api/lessons/2/complete", token, map[string]bool{"isCompleted": true})
	assert.Equal(t, http.StatusOK, status)

	// Completion cannot be reverted.
	status, env = s.do(t, http.MethodPatch, "/api/lessons/2/complete", token, map[string]bool{"isCompleted": false})
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)

	status, env = s.do(t, http.MethodGet, "/api/lessons/2", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &lesson))
	assert.True(t, lesson.IsCompleted)

	status, _ = s.do(t, http.MethodPatch, "/api/lessons/99/complete", token, map[string]bool{"isCompleted": true})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodPatch, "/api/lessons/3/complete", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProblemActions(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	status, env := s.do(t, http.MethodPost, "/api/problems/2/run", token, map[string]string{"code": "print(1)"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Test passed!", env.Message)

	var run struct {
		Output string `json:"output"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &run))
	assert.Equal(t, "Output: [0, 1]", run.Output)

	status, env = s.do(t, http.MethodPost, "/api/problems/2/submit", token, map[string]string{"code": "garbage"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Solution submitted successfully!", env.Message)

	var problem struct {
		IsCompleted bool `json:"isCompleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &problem))
	assert.True(t, problem.IsCompleted)

	status, _ = s.do(t, http.MethodPatch, "/api/problems/3/complete", token, map[string]bool{"isCompleted": true})
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPost, "/api/problems/42/submit", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProjectActions(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	status, env := s.do(t, http.MethodPost, "/api/projects/1/start", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Project started! Check your dashboard for progress.", env.Message)

	status, env = s.do(t, http.MethodGet, "/api/projects/1", token, nil)
	require.Equal(t, http.StatusOK, status)
	var project struct {
		IsCompleted bool `json:"isCompleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.False(t, project.IsCompleted, "starting a project must not complete it")

	status, env = s.do(t, http.MethodPatch, "/api/projects/1/complete", token, map[string]bool{"isCompleted": true})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.True(t, project.IsCompleted)
}

func TestSessionsIsolated(t *testing.T) {
	s := newTestServer(t)
	ada := s.login(t, "ada")
	bob := s.login(t, "bob")

	status, _ := s.do(t, http.MethodPatch, "/api/lessons/2/complete", ada, map[string]bool{"isCompleted": true})
	require.Equal(t, http.StatusOK, status)

	status, env := s.do(t, http.MethodGet, "/api/lessons/2", bob, nil)
	require.Equal(t, http.StatusOK, status)
	var lesson struct {
		IsCompleted bool `json:"isCompleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &lesson))
	assert.False(t, lesson.IsCompleted)
}

func TestProgressAndActivity(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada")

	s.do(t, http.MethodPost, "/api/problems/2/submit", token, nil)

	status, env := s.do(t, http.MethodGet, "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, status)
	var progress session.Progress
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.Equal(t, 2, progress.ProblemsSolved)
	assert.Equal(t, 45, progress.OverallPercent)

	status, env = s.do(t, http.MethodGet, "/api/activity?limit=10", token, nil)
	require.Equal(t, http.StatusOK, status)
	var events []store.ActivityEvent
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, store.ActionSolutionSubmitted, events[0].Action)
	assert.Equal(t, store.ActionLogin, events[1].Action)
}

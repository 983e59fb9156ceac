package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	testServer = "http://tasks.test"
	testTaskID = "0190b7a0-7c6e-7d2a-9f1e-1a2b3c4d5e6f"
)

var (
	testUser   = models.AuthenticatedUser{ID: 7, Name: "Ann", Email: "ann@example.com"}
	testCookie = &http.Cookie{Name: adapter.SessionCookieName, Value: "session-token"}
)

type testApp struct {
	app    *App
	api    *mock.MockServerAdapter
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	// session is the store the app reads, for seeding and inspection
	session *SessionStore
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()

	api := mock.NewMockServerAdapter(gomock.NewController(t))
	sessionPath := filepath.Join(t.TempDir(), "session.json")

	ta := &testApp{
		api:     api,
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		session: NewSessionStore(sessionPath),
	}
	ta.app = &App{
		buildInfo: models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"),
		newAdapter: func(cfg config.ClientAdapter, _ *logger.Logger) (adapter.ServerAdapter, error) {
			assert.Equal(t, testServer, cfg.HTTPAddress)
			return api, nil
		},
		stdin:       strings.NewReader(stdin),
		stdout:      ta.stdout,
		stderr:      ta.stderr,
		sessionPath: sessionPath,
	}

	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), append([]string{"--server", testServer, "--log-file", ""}, args...))
}

func (ta *testApp) loggedIn(t *testing.T) {
	t.Helper()
	require.NoError(t, ta.session.Save(testServer, testCookie))
	ta.api.EXPECT().SetSessionCookie(gomock.Any()).Do(func(cookie *http.Cookie) {
		assert.Equal(t, testCookie.Value, cookie.Value)
	})
}

func TestApp_Register(t *testing.T) {
	ta := newTestApp(t, "correct horse\n")

	ta.api.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "correct horse",
	}).Return(testUser, nil)
	ta.api.EXPECT().SessionCookie().Return(testCookie)

	err := ta.run("register", "--name", " Ann ", "--email", "ann@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Registered and logged in as Ann <ann@example.com>\n", ta.stdout.String())
	assert.Contains(t, ta.stderr.String(), "Password: ")

	saved, err := ta.session.Load(testServer)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, testCookie.Value, saved.Value)
}

func TestApp_LoginPromptsForMissingInput(t *testing.T) {
	ta := newTestApp(t, "  ann@example.com \n pass with spaces \n")

	ta.api.EXPECT().Login(gomock.Any(), models.LoginRequest{
		Email:    "ann@example.com",
		Password: " pass with spaces ",
	}).Return(testUser, nil)
	ta.api.EXPECT().SessionCookie().Return(testCookie)

	require.NoError(t, ta.run("login"))

	assert.Equal(t, "Logged in as Ann <ann@example.com>\n", ta.stdout.String())
	assert.Contains(t, ta.stderr.String(), "Email: ")
}

func TestApp_LoginErrors(t *testing.T) {
	t.Run("rejected credentials", func(t *testing.T) {
		ta := newTestApp(t, "wrong\n")
		rejected := &adapter.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid credentials"}
		ta.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthenticatedUser{}, rejected)

		err := ta.run("login", "--email", "ann@example.com")
		assert.ErrorIs(t, err, rejected)
		assert.NotErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("no session cookie in response", func(t *testing.T) {
		ta := newTestApp(t, "secret\n")
		ta.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(testUser, nil)
		ta.api.EXPECT().SessionCookie().Return(nil)

		err := ta.run("login", "--email", "ann@example.com")
		assert.ErrorIs(t, err, adapter.ErrInvalidResponse)
	})

	t.Run("empty password", func(t *testing.T) {
		ta := newTestApp(t, "\n")

		err := ta.run("login", "--email", "ann@example.com")
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestApp_SessionIsRestoredForSameServerOnly(t *testing.T) {
	t.Run("same server", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.loggedIn(t)
		ta.api.EXPECT().Me(gomock.Any()).Return(testUser, nil)

		require.NoError(t, ta.run("me"))

		out := ta.stdout.String()
		assert.Contains(t, out, "7")
		assert.Contains(t, out, "Ann")
		assert.Contains(t, out, "ann@example.com")
	})

	t.Run("other server", func(t *testing.T) {
		ta := newTestApp(t, "")
		require.NoError(t, ta.session.Save("http://elsewhere.test", testCookie))
		// SetSessionCookie is not expected
		ta.api.EXPECT().Me(gomock.Any()).Return(models.AuthenticatedUser{}, adapter.ErrUnauthorized)

		err := ta.run("me")
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})
}

func TestApp_RejectedSessionIsRemoved(t *testing.T) {
	ta := newTestApp(t, "")
	ta.loggedIn(t)
	ta.api.EXPECT().ListTasks(gomock.Any(), gomock.Any()).
		Return(models.TaskListResponse{}, fmt.Errorf("list tasks: %w", adapter.ErrUnauthorized))

	err := ta.run("task", "list")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, statErr := os.Stat(ta.app.sessionPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestApp_Logout(t *testing.T) {
	tests := []struct {
		name      string
		serverErr error
		wantErr   error
		wantFile  bool
	}{
		{name: "session closed", serverErr: nil},
		{name: "session already expired", serverErr: adapter.ErrUnauthorized},
		{name: "server down", serverErr: adapter.ErrInternalServerError, wantErr: adapter.ErrInternalServerError, wantFile: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.loggedIn(t)
			ta.api.EXPECT().Logout(gomock.Any()).Return(tt.serverErr)

			err := ta.run("logout")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Logged out\n", ta.stdout.String())
			}

			_, statErr := os.Stat(ta.app.sessionPath)
			assert.Equal(t, tt.wantFile, statErr == nil)
		})
	}
}

func TestApp_Health(t *testing.T) {
	ta := newTestApp(t, "")
	ta.api.EXPECT().Health(gomock.Any()).Return(nil)

	require.NoError(t, ta.run("health"))
	assert.Equal(t, "Server is healthy\n", ta.stdout.String())

	ta = newTestApp(t, "")
	ta.api.EXPECT().Health(gomock.Any()).Return(adapter.ErrInternalServerError)
	assert.ErrorIs(t, ta.run("health"), adapter.ErrInternalServerError)
}

func TestApp_Version(t *testing.T) {
	t.Run("server reachable", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.api.EXPECT().ServerVersion(gomock.Any()).Return("v1.2.0", nil)

		require.NoError(t, ta.run("version"))

		out := ta.stdout.String()
		assert.Contains(t, out, "Build version: v1.2.3")
		assert.Contains(t, out, "Build commit: abc123")
		assert.Contains(t, out, "Server version: v1.2.0")
	})

	t.Run("server unreachable", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.api.EXPECT().ServerVersion(gomock.Any()).Return("", errors.New("connection refused"))

		require.NoError(t, ta.run("version"))
		assert.Contains(t, ta.stdout.String(), "Server version: "+models.BuildInfoUnknown)
	})
}

func TestApp_TaskList(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

	t.Run("filters and renders a page", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.loggedIn(t)
		ta.api.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{
			Page:   2,
			Limit:  5,
			Status: models.StatusInProgress,
			Search: "milk",
		}).Return(models.TaskListResponse{
			Success: true,
			Tasks: []models.Task{
				{ID: testTaskID, Title: "Buy milk", Status: models.StatusInProgress, CreatedAt: created},
			},
			Pagination: models.Pagination{Page: 2, Limit: 5, Total: 12, TotalPages: 3},
		}, nil)

		err := ta.run("task", "list", "--page", "2", "--limit", "5", "--status", "in-progress", "--search", "milk")
		require.NoError(t, err)

		out := ta.stdout.String()
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, testTaskID)
		assert.Contains(t, out, "Buy milk")
		assert.Contains(t, out, "In Progress")
		assert.Contains(t, out, "Page 2 of 3, 12 tasks total")
	})

	t.Run("empty", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.loggedIn(t)
		ta.api.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{}).
			Return(models.TaskListResponse{Success: true, Tasks: []models.Task{}}, nil)

		require.NoError(t, ta.run("tasks", "ls"))
		assert.Contains(t, ta.stdout.String(), "No tasks found")
	})

	t.Run("unknown status is rejected locally", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.loggedIn(t)

		err := ta.run("task", "list", "--status", "done")
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestApp_TaskCreate(t *testing.T) {
	ta := newTestApp(t, "  Buy milk \n")
	ta.loggedIn(t)
	ta.api.EXPECT().CreateTask(gomock.Any(), models.CreateTaskRequest{
		Title:       "Buy milk",
		Description: "two litres",
		Status:      models.StatusCompleted,
	}).Return(models.Task{
		ID:          testTaskID,
		Title:       "Buy milk",
		Description: "two litres",
		Status:      models.StatusCompleted,
		CreatedAt:   time.Now(),
	}, nil)

	err := ta.run("task", "create", "-d", "two litres", "--status", "COMPLETED")
	require.NoError(t, err)

	out := ta.stdout.String()
	assert.Contains(t, out, testTaskID)
	assert.Contains(t, out, "two litres")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, ta.stderr.String(), "Title: ")
}

func TestApp_TaskGet(t *testing.T) {
	task := models.Task{ID: testTaskID, Title: "Buy milk", Description: "two litres", Status: models.StatusPending}

	t.Run("copies description", func(t *testing.T) {
		var copied string
		original := writeClipboard
		writeClipboard = func(text string) error {
			copied = text
			return nil
		}
		t.Cleanup(func() { writeClipboard = original })

		ta := newTestApp(t, "")
		ta.loggedIn(t)
		ta.api.EXPECT().GetTask(gomock.Any(), testTaskID).Return(task, nil)

		require.NoError(t, ta.run("task", "get", testTaskID, "--copy"))

		assert.Equal(t, "two litres", copied)
		assert.Contains(t, ta.stdout.String(), "Buy milk")
		assert.Contains(t, ta.stderr.String(), "Description copied to clipboard")
	})

	t.Run("not found", func(t *testing.T) {
		ta := newTestApp(t, "")
		ta.loggedIn(t)
		ta.api.EXPECT().GetTask(gomock.Any(), "missing").Return(models.Task{}, adapter.ErrNotFound)

		assert.ErrorIs(t, ta.run("task", "get", "missing"), adapter.ErrNotFound)
	})

	t.Run("id is required", func(t *testing.T) {
		ta := newTestApp(t, "")
		assert.Error(t, ta.run("task", "get"))
	})
}

func TestApp_TaskUpdateSendsChangedFieldsOnly(t *testing.T) {
	completed := models.StatusCompleted
	description := "two litres, semi-skimmed"
	title := "Buy oat milk"

	tests := []struct {
		name string
		args []string
		want models.TaskUpdate
	}{
		{
			name: "status",
			args: []string{"--status", "completed"},
			want: models.TaskUpdate{Status: &completed},
		},
		{
			name: "description",
			args: []string{"-d", description},
			want: models.TaskUpdate{Description: &description},
		},
		{
			name: "title and status",
			args: []string{"-t", title, "--status", "Completed"},
			want: models.TaskUpdate{Title: &title, Status: &completed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.loggedIn(t)
			ta.api.EXPECT().UpdateTask(gomock.Any(), testTaskID, tt.want).
				Return(models.Task{ID: testTaskID, Title: "Buy milk", Status: models.StatusCompleted}, nil)

			require.NoError(t, ta.run(append([]string{"task", "update", testTaskID}, tt.args...)...))
			assert.Contains(t, ta.stdout.String(), testTaskID)
		})
	}
}

func TestApp_TaskUpdateRejectsLocally(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no fields", wantErr: ErrNothingToUpdate},
		{name: "empty status", args: []string{"--status", ""}, wantErr: ErrUnknownStatus},
		{name: "unknown status", args: []string{"--status", "archived"}, wantErr: ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.loggedIn(t)

			err := ta.run(append([]string{"task", "update", testTaskID}, tt.args...)...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_TaskDelete(t *testing.T) {
	ta := newTestApp(t, "")
	ta.loggedIn(t)
	ta.api.EXPECT().DeleteTask(gomock.Any(), testTaskID).Return(nil)

	require.NoError(t, ta.run("task", "rm", testTaskID))
	assert.Equal(t, "Task "+testTaskID+" deleted\n", ta.stdout.String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.TaskStatus
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "Pending", want: models.StatusPending},
		{in: "pending", want: models.StatusPending},
		{in: "in_progress", want: models.StatusInProgress},
		{in: " In Progress ", want: models.StatusInProgress},
		{in: "COMPLETED", want: models.StatusCompleted},
		{in: "done", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseStatus(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownStatus, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

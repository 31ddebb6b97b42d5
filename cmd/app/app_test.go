package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcourse/quizcourse/internal/api"
	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/config"
	"github.com/quizcourse/quizcourse/internal/db"
	"github.com/quizcourse/quizcourse/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	conf := &config.AppConfig{
		API:     &config.APIConfig{Environment: "test", Timeout: 5 * time.Second},
		Storage: &config.StorageConfig{Driver: db.DriverSQLite, DSN: "file:apptest?mode=memory&cache=shared"},
		Game:    &config.GameConfig{MaxEnergy: 5, DefaultLanguage: "en"},
		Stub: &config.StubConfig{
			JWTSigningKey:      "test-key",
			TokenTTL:           time.Hour,
			AllowedCORSDomains: []string{"*"},
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	srv := httptest.NewServer(api.NewServer(conf, memstore.New()).Router)
	t.Cleanup(srv.Close)
	conf.API.BaseURL = srv.URL

	gormDB, err := db.Open(conf.Storage)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gormDB) })

	return New(conf, gormDB, strings.NewReader(""), &bytes.Buffer{})
}

func run(t *testing.T, a *App, input string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	a.in = bufio.NewReader(strings.NewReader(input))
	a.out = out
	err := a.Execute(context.Background(), args)

	return out.String(), err
}

func TestApp_Journey(t *testing.T) {
	a := newTestApp(t)

	out, err := run(t, a, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "route: auth")

	out, err = run(t, a, "", "register",
		"--email", "ada@example.com", "--password", "secret123",
		"--name", "Ada", "--lastname", "Lovelace", "--birth-date", "1815-12-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Account created")
	assert.Contains(t, out, "interests pick")

	_, err = run(t, a, "", "dashboard")
	assert.ErrorIs(t, err, errInterestsRequired)

	_, err = run(t, a, "", "interests", "set", "Art", "Music")
	assert.ErrorIs(t, err, service.ErrInterestCount)

	out, err = run(t, a, "", "interests", "set", "Art", "Music", "Science", "History", "Space")
	require.NoError(t, err)
	assert.Contains(t, out, "Interests saved")

	out, err = run(t, a, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "route: main")
	assert.Contains(t, out, "interests: 5/5")

	out, err = run(t, a, "", "course", "--title", "Volcanoes", "--duration", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "is ready with 5 games")

	folders, err := a.Folders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, folders, 1)
	folderID := folders[0].ID

	out, err = run(t, a, strings.Repeat("1\n", 5), "play", folderID)
	require.NoError(t, err)
	assert.Contains(t, out, "Course progress: 100% answered")

	out, err = run(t, a, "", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "XP: 50")
	assert.Contains(t, out, "Volcanoes")

	out, err = run(t, a, "", "folders", "show", folderID)
	require.NoError(t, err)
	assert.Contains(t, out, "100% answered")

	out, err = run(t, a, "", "progress", folderID, "--sync")
	require.NoError(t, err)
	assert.Contains(t, out, "5/5 answered (100%)")

	out, err = run(t, a, "", "language", "es")
	require.NoError(t, err)
	assert.Contains(t, out, "language: es")

	out, err = run(t, a, "", "folders", "rename", folderID, "Active volcanoes")
	require.NoError(t, err)
	assert.Contains(t, out, "Active volcanoes")

	out, err = run(t, a, "", "report", "--folder", folderID, "--reason", "other", "--details", "typo")
	require.NoError(t, err)
	assert.Contains(t, out, "Report")

	out, err = run(t, a, "", "folders", "delete", folderID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	out, err = run(t, a, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	out, err = run(t, a, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "route: auth")

	out, err = run(t, a, "ada@example.com\nsecret123\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Ada")
	assert.Contains(t, out, "quizcourse dashboard")
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "interest count",
			err:  service.ErrInterestCount,
			want: "please choose exactly 5 interests",
		},
		{
			name: "expired session",
			err:  &response.Err{HTTPStatusCode: http.StatusUnauthorized, Detail: "Could not validate credentials"},
			want: "your session has expired, please log in again",
		},
		{
			name: "backend detail",
			err:  &response.Err{HTTPStatusCode: http.StatusConflict, Detail: "email already registered"},
			want: "email already registered",
		},
		{
			name: "out of energy",
			err:  service.ErrOutOfEnergy,
			want: service.ErrOutOfEnergy.Error(),
		},
		{
			name: "unknown",
			err:  errors.New("dial tcp: connection refused"),
			want: "something went wrong, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}

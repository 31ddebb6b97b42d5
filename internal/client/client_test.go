package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcourse/quizcourse/internal/api"
	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/config"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func newTestBackend(t *testing.T) (*Client, *memstore.Store) {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{Environment: "test"},
		Stub: &config.StubConfig{
			JWTSigningKey:      "test-key",
			TokenTTL:           time.Hour,
			AllowedCORSDomains: []string{"*"},
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}
	store := memstore.New()
	srv := httptest.NewServer(api.NewServer(conf, store).Router)
	t.Cleanup(srv.Close)

	return New(srv.URL, WithTimeout(5*time.Second)), store
}

func registerAndLogin(t *testing.T, c *Client) domain.User {
	t.Helper()
	ctx := context.Background()

	user, err := c.Register(ctx, request.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "secret123",
		Name:      "Ada",
		Lastname:  "Lovelace",
		BirthDate: "1815-12-10",
	})
	require.NoError(t, err)

	resp, err := c.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	c.SetAuthToken(resp.AccessToken)

	return user
}

func TestClient_Auth(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)

	user := registerAndLogin(t, c)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Empty(t, user.Interests)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	resp, err := c.LoginJSON(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = c.Login(ctx, "ada@example.com", "wrong-pass1")
	require.Error(t, err)
	assert.True(t, response.IsUnauthorized(err))

	var apiErr *response.Err
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Incorrect email or password", apiErr.Detail)

	_, err = c.Register(ctx, request.RegisterRequest{
		Email: "ada@example.com", Password: "secret123", Name: "Ada", Lastname: "L", BirthDate: "1815-12-10",
	})
	assert.Equal(t, http.StatusConflict, response.StatusCode(err))
}

func TestClient_Unauthenticated(t *testing.T) {
	c, _ := newTestBackend(t)

	_, err := c.Me(context.Background())
	assert.True(t, response.IsUnauthorized(err))

	c.SetAuthToken("not-a-jwt")
	_, err = c.Me(context.Background())
	assert.True(t, response.IsUnauthorized(err))
}

func TestClient_Interests(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)
	registerAndLogin(t, c)

	interests := []string{"Art", "Music", "Science", "History", "Space"}
	user, err := c.UpdateInterests(ctx, interests)
	require.NoError(t, err)
	assert.Equal(t, interests, user.Interests)

	_, err = c.UpdateInterests(ctx, interests[:3])
	assert.Equal(t, http.StatusBadRequest, response.StatusCode(err))
}

func TestClient_FoldersGamesProgress(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)
	registerAndLogin(t, c)

	folder, err := c.CreateFolder(ctx, request.CreateFolderRequest{Title: "Rome", Prompt: "Roman history"})
	require.NoError(t, err)
	assert.NotEmpty(t, folder.ID)

	_, err = c.CreateFolder(ctx, request.CreateFolderRequest{})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode(err))

	gen, err := c.GenerateGames(ctx, folder.ID, request.GenerateGamesRequest{
		Duration:   10,
		Difficulty: domain.DifficultyHarder,
		Language:   domain.LanguageSpanish,
	})
	require.NoError(t, err)
	assert.Equal(t, folder.ID, gen.FolderID)
	require.Len(t, gen.Games, 10)

	folders, err := c.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Len(t, folders[0].GameIDs, 10)

	got, err := c.GetFolder(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rome", got.Title)

	fg, err := c.GetFolderWithGames(ctx, folder.ID)
	require.NoError(t, err)
	assert.Len(t, fg.Games, 10)

	games, err := c.GamesByFolder(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, games, 10)

	game, err := c.GetGame(ctx, games[0].ID)
	require.NoError(t, err)
	assert.Equal(t, games[0].Question, game.Question)

	progress, err := c.SaveProgress(ctx, folder.ID, game.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Correct())

	progress, err = c.GetProgress(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Answered())
	assert.Equal(t, 10, progress.Percent(len(games)))

	user, err := c.MarkGamePlayed(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, user.XP())

	dash, err := c.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dash.Folders, 1)
	assert.Equal(t, []string{game.ID}, dash.User.PlayedGameIDs)

	random, err := c.RandomFolderWithGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, folder.ID, random.Folder.ID)

	title := "Ancient Rome"
	updated, err := c.UpdateFolder(ctx, folder.ID, request.UpdateFolderRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	report, err := c.CreateReport(ctx, request.ReportRequest{GameID: game.ID, Reason: "wrong_answer"})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)

	require.NoError(t, c.DeleteFolder(ctx, folder.ID))
	_, err = c.GetFolder(ctx, folder.ID)
	assert.True(t, response.IsNotFound(err))
}

func TestClient_ForeignFolder(t *testing.T) {
	ctx := context.Background()
	c, store := newTestBackend(t)
	registerAndLogin(t, c)

	other, err := store.CreateUser(ctx, request.RegisterRequest{Email: "bob@example.com", Password: "secret123"})
	require.NoError(t, err)
	folder, err := store.CreateFolder(ctx, other.ID, request.CreateFolderRequest{Title: "Bob's"})
	require.NoError(t, err)

	// Readable by anyone, writable only by the owner.
	_, err = c.GetFolder(ctx, folder.ID)
	require.NoError(t, err)

	err = c.DeleteFolder(ctx, folder.ID)
	assert.Equal(t, http.StatusForbidden, response.StatusCode(err))
}

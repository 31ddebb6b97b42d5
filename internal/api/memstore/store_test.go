package memstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func newUser(t *testing.T, s *Store, email string) domain.User {
	t.Helper()

	u, err := s.CreateUser(context.Background(), request.RegisterRequest{
		Email:    email,
		Password: "secret123",
		Name:     "Ada",
		Lastname: "Lovelace",
	})
	require.NoError(t, err)

	return u
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := New()

	u := newUser(t, s, "Ada@Example.com")
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Empty(t, u.Interests)
	assert.NotNil(t, u.PlayedGameIDs)

	_, err := s.CreateUser(ctx, request.RegisterRequest{Email: "ada@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	got, err := s.Authenticate(ctx, " ADA@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(ctx, "ada@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = s.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	interests := []string{"Art", "Music", "Science", "History", "Space"}
	updated, err := s.SetInterests(ctx, u.ID, interests)
	require.NoError(t, err)
	assert.Equal(t, interests, updated.Interests)

	// Mutating the returned copy must not leak into the store.
	updated.Interests[0] = "Changed"
	again, err := s.FindUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Art", again.Interests[0])
}

func TestStore_FoldersAndGames(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := newUser(t, s, "owner@example.com")
	other := newUser(t, s, "other@example.com")

	f, err := s.CreateFolder(ctx, owner.ID, request.CreateFolderRequest{Title: "Rome", Prompt: "Roman history"})
	require.NoError(t, err)

	games, err := s.GenerateGames(ctx, owner.ID, f.ID, request.GenerateGamesRequest{
		Duration:   5,
		Difficulty: domain.DifficultySame,
		Language:   domain.LanguageEnglish,
	})
	require.NoError(t, err)
	require.Len(t, games, 5)
	for i, g := range games {
		assert.Equal(t, i+1, g.Order)
		assert.Len(t, g.Options, 4)
		assert.True(t, g.HasOption(g.CorrectAnswer))
		assert.Equal(t, f.ID, g.FolderID)
	}

	_, err = s.GenerateGames(ctx, other.ID, f.ID, request.GenerateGamesRequest{Duration: 5})
	assert.ErrorIs(t, err, ErrNotOwner)

	fg, err := s.FolderWithGames(ctx, f.ID)
	require.NoError(t, err)
	assert.Len(t, fg.Games, 5)
	assert.Len(t, fg.Folder.GameIDs, 5)

	owned, err := s.ListFolders(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
	none, err := s.ListFolders(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	random, err := s.RandomFolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.ID, random.Folder.ID)

	title := "Ancient Rome"
	renamed, err := s.UpdateFolder(ctx, owner.ID, f.ID, request.UpdateFolderRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Ancient Rome", renamed.Title)
	assert.Equal(t, "Roman history", renamed.Prompt)

	assert.ErrorIs(t, s.DeleteFolder(ctx, other.ID, f.ID), ErrNotOwner)
	require.NoError(t, s.DeleteFolder(ctx, owner.ID, f.ID))
	_, err = s.FindGame(ctx, games[0].ID)
	assert.ErrorIs(t, err, ErrGameNotFound)
	_, err = s.RandomFolder(ctx)
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestStore_RandomFolderConcurrent(t *testing.T) {
	ctx := context.Background()
	s := New()
	u := newUser(t, s, "ada@example.com")

	ids := map[string]bool{}
	for _, title := range []string{"Rome", "Space", "Jazz"} {
		f, err := s.CreateFolder(ctx, u.ID, request.CreateFolderRequest{Title: title})
		require.NoError(t, err)
		_, err = s.GenerateGames(ctx, u.ID, f.ID, request.GenerateGamesRequest{Duration: 5})
		require.NoError(t, err)
		ids[f.ID] = true
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				fg, err := s.RandomFolder(ctx)
				if err != nil {
					return err
				}
				if !ids[fg.Folder.ID] || len(fg.Games) != 5 {
					return fmt.Errorf("unexpected folder %q with %d games", fg.Folder.ID, len(fg.Games))
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestStore_ProgressAndPlays(t *testing.T) {
	ctx := context.Background()
	s := New()
	u := newUser(t, s, "player@example.com")

	f, err := s.CreateFolder(ctx, u.ID, request.CreateFolderRequest{Title: "Space"})
	require.NoError(t, err)
	games, err := s.GenerateGames(ctx, u.ID, f.ID, request.GenerateGamesRequest{
		Duration: 5, Difficulty: domain.DifficultyHarder, Language: domain.LanguageSpanish,
	})
	require.NoError(t, err)

	p, err := s.SaveProgress(ctx, u.ID, f.ID, games[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Answered())
	assert.Equal(t, 1, p.Correct())

	_, err = s.SaveProgress(ctx, u.ID, "missing", games[0].ID, true)
	assert.ErrorIs(t, err, ErrFolderNotFound)

	other, err := s.CreateFolder(ctx, u.ID, request.CreateFolderRequest{Title: "Other"})
	require.NoError(t, err)
	_, err = s.SaveProgress(ctx, u.ID, other.ID, games[0].ID, true)
	assert.ErrorIs(t, err, ErrGameNotInFolder)

	user, err := s.MarkPlayed(ctx, u.ID, games[0].ID)
	require.NoError(t, err)
	user, err = s.MarkPlayed(ctx, u.ID, games[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{games[0].ID}, user.PlayedGameIDs)
	assert.Equal(t, 10, user.XP())

	dash, err := s.Dashboard(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, dash.Folders, 2)
	assert.Equal(t, 10, dash.User.XP())

	r, err := s.CreateReport(ctx, u.ID, request.ReportRequest{GameID: games[1].ID, Reason: "unclear_question"})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Len(t, s.Reports(), 1)

	_, err = s.CreateReport(ctx, u.ID, request.ReportRequest{GameID: "missing", Reason: "other"})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

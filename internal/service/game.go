package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quizcourse/quizcourse/internal/domain"
)

var (
	ErrUnknownOption = errors.New("option is not one of the game's options")
	ErrSyncFailed    = errors.New("answer saved locally but not synced")
)

type GameAPI interface {
	GetGame(ctx context.Context, gameID string) (domain.Game, error)
	GamesByFolder(ctx context.Context, folderID string) ([]domain.Game, error)
	MarkGamePlayed(ctx context.Context, gameID string) (domain.User, error)
	GetProgress(ctx context.Context, folderID string) (domain.Progress, error)
	SaveProgress(ctx context.Context, folderID, gameID string, correct bool) (domain.Progress, error)
}

type ProgressStore interface {
	Save(ctx context.Context, userID, folderID, gameID string, entry domain.ProgressEntry) error
	FindByFolder(ctx context.Context, userID, folderID string) (domain.Progress, error)
	Merge(ctx context.Context, userID string, p domain.Progress) error
}

type EnergyMeter interface {
	Current(ctx context.Context) (domain.Energy, error)
	StartPlay(ctx context.Context) (domain.Energy, error)
	Consume(ctx context.Context, n int) (domain.Energy, error)
}

type PlayerState interface {
	CurrentUserID() string
	SetUser(user *domain.User)
}

// AnswerResult is what the player sees after answering a game.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string
	Energy        domain.Energy
	XP            int
}

type GameService struct {
	api      GameAPI
	progress ProgressStore
	energy   EnergyMeter
	player   PlayerState
	now      func() time.Time
}

func NewGameService(api GameAPI, progress ProgressStore, energy EnergyMeter, player PlayerState) *GameService {
	return &GameService{
		api:      api,
		progress: progress,
		energy:   energy,
		player:   player,
		now:      time.Now,
	}
}

func (s *GameService) Get(ctx context.Context, gameID string) (domain.Game, error) {
	game, err := s.api.GetGame(ctx, gameID)
	if err != nil {
		return domain.Game{}, fmt.Errorf("s.api.GetGame -> %w", err)
	}

	return game, nil
}

func (s *GameService) ByFolder(ctx context.Context, folderID string) ([]domain.Game, error) {
	games, err := s.api.GamesByFolder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("s.api.GamesByFolder -> %w", err)
	}

	return games, nil
}

// StartPlay fails with ErrOutOfEnergy when the battery is empty.
func (s *GameService) StartPlay(ctx context.Context) (domain.Energy, error) {
	return s.energy.StartPlay(ctx)
}

// Answer records the chosen option. The local record is kept even when the
// remote calls fail; those failures come back wrapped in ErrSyncFailed.
func (s *GameService) Answer(ctx context.Context, game domain.Game, option string) (AnswerResult, error) {
	if !game.HasOption(option) {
		return AnswerResult{}, ErrUnknownOption
	}
	userID := s.player.CurrentUserID()
	if userID == "" {
		return AnswerResult{}, ErrNotAuthenticated
	}

	res := AnswerResult{
		Correct:       game.IsCorrect(option),
		CorrectAnswer: game.CorrectAnswer,
		Explanation:   game.Explanation,
	}

	entry := domain.ProgressEntry{Correct: res.Correct, AnsweredAt: s.now().UTC()}
	if err := s.progress.Save(ctx, userID, game.FolderID, game.ID, entry); err != nil {
		return AnswerResult{}, fmt.Errorf("s.progress.Save -> %w", err)
	}

	var err error
	if res.Correct {
		res.Energy, err = s.energy.Current(ctx)
	} else {
		res.Energy, err = s.energy.Consume(ctx, 1)
	}
	if err != nil {
		return AnswerResult{}, fmt.Errorf("energy -> %w", err)
	}

	var syncErrs []error
	if _, err := s.api.SaveProgress(ctx, game.FolderID, game.ID, res.Correct); err != nil {
		syncErrs = append(syncErrs, fmt.Errorf("s.api.SaveProgress -> %w", err))
	}
	user, err := s.api.MarkGamePlayed(ctx, game.ID)
	if err != nil {
		syncErrs = append(syncErrs, fmt.Errorf("s.api.MarkGamePlayed -> %w", err))
	} else {
		s.player.SetUser(&user)
		res.XP = user.XP()
	}

	if len(syncErrs) > 0 {
		zap.L().Warn("answer not synced",
			zap.String("game_id", game.ID), zap.Errors("errors", syncErrs))
		return res, fmt.Errorf("%w: %w", ErrSyncFailed, errors.Join(syncErrs...))
	}

	return res, nil
}

// Progress returns the local progress of a folder.
func (s *GameService) Progress(ctx context.Context, folderID string) (domain.Progress, error) {
	userID := s.player.CurrentUserID()
	if userID == "" {
		return domain.Progress{}, ErrNotAuthenticated
	}

	p, err := s.progress.FindByFolder(ctx, userID, folderID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("s.progress.FindByFolder -> %w", err)
	}

	return p, nil
}

// SyncProgress pulls the remote progress of a folder, keeps the newest
// answer per game and returns the merged result.
func (s *GameService) SyncProgress(ctx context.Context, folderID string) (domain.Progress, error) {
	userID := s.player.CurrentUserID()
	if userID == "" {
		return domain.Progress{}, ErrNotAuthenticated
	}

	remote, err := s.api.GetProgress(ctx, folderID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("s.api.GetProgress -> %w", err)
	}
	remote.FolderID = folderID
	if err := s.progress.Merge(ctx, userID, remote); err != nil {
		return domain.Progress{}, fmt.Errorf("s.progress.Merge -> %w", err)
	}

	return s.Progress(ctx, folderID)
}

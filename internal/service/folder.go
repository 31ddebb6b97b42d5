package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type FolderAPI interface {
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	GetFolder(ctx context.Context, folderID string) (domain.Folder, error)
	GetFolderWithGames(ctx context.Context, folderID string) (domain.FolderWithGames, error)
	CreateFolder(ctx context.Context, req request.CreateFolderRequest) (domain.Folder, error)
	UpdateFolder(ctx context.Context, folderID string, req request.UpdateFolderRequest) (domain.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
	GamesByFolder(ctx context.Context, folderID string) ([]domain.Game, error)
	GenerateGames(ctx context.Context, folderID string, req request.GenerateGamesRequest) (response.GenerateGamesResponse, error)
	RandomFolderWithGames(ctx context.Context) (domain.FolderWithGames, error)
}

type LanguageProvider interface {
	Get(ctx context.Context) (domain.Language, error)
}

type FolderProgressStore interface {
	DeleteFolder(ctx context.Context, userID, folderID string) error
}

type CurrentUser interface {
	CurrentUserID() string
}

// GenerateOptions are the knobs of a generation run. Zero values take the
// defaults: five games, same difficulty, the stored language.
type GenerateOptions struct {
	Duration   int
	Difficulty domain.Difficulty
	Language   domain.Language
}

type FolderService struct {
	api      FolderAPI
	lang     LanguageProvider
	progress FolderProgressStore
	user     CurrentUser
}

func NewFolderService(api FolderAPI, lang LanguageProvider, progress FolderProgressStore, user CurrentUser) *FolderService {
	return &FolderService{
		api:      api,
		lang:     lang,
		progress: progress,
		user:     user,
	}
}

func (s *FolderService) List(ctx context.Context) ([]domain.Folder, error) {
	folders, err := s.api.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.ListFolders -> %w", err)
	}

	return folders, nil
}

func (s *FolderService) Get(ctx context.Context, folderID string) (domain.Folder, error) {
	folder, err := s.api.GetFolder(ctx, folderID)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("s.api.GetFolder -> %w", err)
	}

	return folder, nil
}

func (s *FolderService) WithGames(ctx context.Context, folderID string) (domain.FolderWithGames, error) {
	fg, err := s.api.GetFolderWithGames(ctx, folderID)
	if err != nil {
		return domain.FolderWithGames{}, fmt.Errorf("s.api.GetFolderWithGames -> %w", err)
	}

	return fg, nil
}

// Open fetches a folder and its games concurrently. It fails as a whole
// when either request fails.
func (s *FolderService) Open(ctx context.Context, folderID string) (domain.FolderWithGames, error) {
	var (
		folder domain.Folder
		games  []domain.Game
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		folder, err = s.api.GetFolder(gctx, folderID)
		if err != nil {
			return fmt.Errorf("s.api.GetFolder -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		games, err = s.api.GamesByFolder(gctx, folderID)
		if err != nil {
			return fmt.Errorf("s.api.GamesByFolder -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.FolderWithGames{}, err
	}

	return domain.FolderWithGames{Folder: folder, Games: games}, nil
}

func (s *FolderService) Create(ctx context.Context, req request.CreateFolderRequest) (domain.Folder, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		return domain.Folder{}, err
	}

	folder, err := s.api.CreateFolder(ctx, req)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("s.api.CreateFolder -> %w", err)
	}

	return folder, nil
}

func (s *FolderService) Update(ctx context.Context, folderID string, req request.UpdateFolderRequest) (domain.Folder, error) {
	if err := req.Validate(); err != nil {
		return domain.Folder{}, err
	}

	folder, err := s.api.UpdateFolder(ctx, folderID, req)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("s.api.UpdateFolder -> %w", err)
	}

	return folder, nil
}

func (s *FolderService) Rename(ctx context.Context, folderID, title string) (domain.Folder, error) {
	title = strings.TrimSpace(title)
	return s.Update(ctx, folderID, request.UpdateFolderRequest{Title: &title})
}

// Delete removes the folder remotely and forgets its local progress.
func (s *FolderService) Delete(ctx context.Context, folderID string) error {
	if err := s.api.DeleteFolder(ctx, folderID); err != nil {
		return fmt.Errorf("s.api.DeleteFolder -> %w", err)
	}

	if userID := s.user.CurrentUserID(); userID != "" {
		if err := s.progress.DeleteFolder(ctx, userID, folderID); err != nil {
			zap.L().Warn("could not drop local progress",
				zap.String("folder_id", folderID), zap.Error(err))
		}
	}

	return nil
}

func (s *FolderService) GenerateGames(ctx context.Context, folderID string, opts GenerateOptions) (response.GenerateGamesResponse, error) {
	req, err := s.generateRequest(ctx, opts)
	if err != nil {
		return response.GenerateGamesResponse{}, err
	}

	resp, err := s.api.GenerateGames(ctx, folderID, req)
	if err != nil {
		return response.GenerateGamesResponse{}, fmt.Errorf("s.api.GenerateGames -> %w", err)
	}
	zap.L().Info("games generated",
		zap.String("folder_id", folderID), zap.Int("count", len(resp.Games)))

	return resp, nil
}

// GenerateCourse creates a folder and fills it with generated games. When
// generation fails the created folder is returned with the error.
func (s *FolderService) GenerateCourse(ctx context.Context, req request.CreateFolderRequest, opts GenerateOptions) (domain.FolderWithGames, error) {
	folder, err := s.Create(ctx, req)
	if err != nil {
		return domain.FolderWithGames{}, err
	}

	resp, err := s.GenerateGames(ctx, folder.ID, opts)
	if err != nil {
		return domain.FolderWithGames{Folder: folder}, err
	}

	return domain.FolderWithGames{Folder: folder, Games: resp.Games}, nil
}

func (s *FolderService) Random(ctx context.Context) (domain.FolderWithGames, error) {
	fg, err := s.api.RandomFolderWithGames(ctx)
	if err != nil {
		return domain.FolderWithGames{}, fmt.Errorf("s.api.RandomFolderWithGames -> %w", err)
	}

	return fg, nil
}

func (s *FolderService) generateRequest(ctx context.Context, opts GenerateOptions) (request.GenerateGamesRequest, error) {
	req := request.GenerateGamesRequest{
		Duration:   opts.Duration,
		Difficulty: opts.Difficulty,
		Language:   opts.Language,
	}
	if req.Duration == 0 {
		req.Duration = domain.DefaultGenerationDuration
	}
	if req.Difficulty == "" {
		req.Difficulty = domain.DifficultySame
	}
	if req.Language == "" {
		lang, err := s.lang.Get(ctx)
		if err != nil {
			return request.GenerateGamesRequest{}, fmt.Errorf("s.lang.Get -> %w", err)
		}
		req.Language = lang
	}

	if err := req.Validate(); err != nil {
		return request.GenerateGamesRequest{}, err
	}

	return req, nil
}

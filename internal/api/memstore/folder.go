package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (s *Store) ListFolders(_ context.Context, userID string) ([]domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folders := []domain.Folder{}
	for _, f := range s.folders {
		if f.CreatedBy == userID {
			folders = append(folders, cloneFolder(*f))
		}
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].CreatedAt.After(folders[j].CreatedAt)
	})

	return folders, nil
}

// FindFolder returns any folder; folders are readable by every user so
// that random courses can be shared.
func (s *Store) FindFolder(_ context.Context, folderID string) (domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.folders[folderID]
	if !ok {
		return domain.Folder{}, ErrFolderNotFound
	}

	return cloneFolder(*f), nil
}

func (s *Store) CreateFolder(_ context.Context, userID string, req request.CreateFolderRequest) (domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &domain.Folder{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Prompt:      req.Prompt,
		CreatedBy:   userID,
		CreatedAt:   s.now(),
		GameIDs:     []string{},
	}
	s.folders[f.ID] = f

	return cloneFolder(*f), nil
}

func (s *Store) UpdateFolder(_ context.Context, userID, folderID string, req request.UpdateFolderRequest) (domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.ownedFolder(userID, folderID)
	if err != nil {
		return domain.Folder{}, err
	}
	if req.Title != nil {
		f.Title = *req.Title
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Prompt != nil {
		f.Prompt = *req.Prompt
	}

	return cloneFolder(*f), nil
}

func (s *Store) DeleteFolder(_ context.Context, userID, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.ownedFolder(userID, folderID)
	if err != nil {
		return err
	}
	for _, id := range f.GameIDs {
		delete(s.games, id)
	}
	delete(s.folders, folderID)
	for _, byFolder := range s.progress {
		delete(byFolder, folderID)
	}

	return nil
}

// RandomFolder picks any folder that has games. The pick holds the write
// lock since the shared *rand.Rand is not safe for concurrent use.
func (s *Store) RandomFolder(ctx context.Context) (domain.FolderWithGames, error) {
	s.mu.Lock()
	candidates := make([]string, 0, len(s.folders))
	for id, f := range s.folders {
		if len(f.GameIDs) > 0 {
			candidates = append(candidates, id)
		}
	}
	sort.Strings(candidates)
	var picked string
	if len(candidates) > 0 {
		picked = candidates[s.rand.Intn(len(candidates))]
	}
	s.mu.Unlock()

	if picked == "" {
		return domain.FolderWithGames{}, ErrFolderNotFound
	}

	return s.FolderWithGames(ctx, picked)
}

func (s *Store) FolderWithGames(ctx context.Context, folderID string) (domain.FolderWithGames, error) {
	folder, err := s.FindFolder(ctx, folderID)
	if err != nil {
		return domain.FolderWithGames{}, err
	}
	games, err := s.GamesByFolder(ctx, folderID)
	if err != nil {
		return domain.FolderWithGames{}, err
	}

	return domain.FolderWithGames{Folder: folder, Games: games}, nil
}

// ownedFolder must be called with s.mu held.
func (s *Store) ownedFolder(userID, folderID string) (*domain.Folder, error) {
	f, ok := s.folders[folderID]
	if !ok {
		return nil, ErrFolderNotFound
	}
	if f.CreatedBy != userID {
		return nil, ErrNotOwner
	}

	return f, nil
}

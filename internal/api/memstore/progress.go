package memstore

import (
	"context"

	"github.com/quizcourse/quizcourse/internal/domain"
)

func (s *Store) Progress(_ context.Context, userID, folderID string) (domain.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.folders[folderID]; !ok {
		return domain.Progress{}, ErrFolderNotFound
	}

	return s.progressCopy(userID, folderID), nil
}

func (s *Store) SaveProgress(_ context.Context, userID, folderID, gameID string, correct bool) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[folderID]; !ok {
		return domain.Progress{}, ErrFolderNotFound
	}
	g, ok := s.games[gameID]
	if !ok {
		return domain.Progress{}, ErrGameNotFound
	}
	if g.FolderID != folderID {
		return domain.Progress{}, ErrGameNotInFolder
	}

	byFolder, ok := s.progress[userID]
	if !ok {
		byFolder = make(map[string]domain.Progress)
		s.progress[userID] = byFolder
	}
	p, ok := byFolder[folderID]
	if !ok {
		p = domain.NewProgress(folderID)
		byFolder[folderID] = p
	}
	p.Entries[gameID] = domain.ProgressEntry{Correct: correct, AnsweredAt: s.now()}

	return s.progressCopy(userID, folderID), nil
}

// progressCopy must be called with s.mu held.
func (s *Store) progressCopy(userID, folderID string) domain.Progress {
	out := domain.NewProgress(folderID)
	if p, ok := s.progress[userID][folderID]; ok {
		for id, e := range p.Entries {
			out.Entries[id] = e
		}
	}

	return out
}

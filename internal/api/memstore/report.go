package memstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (s *Store) CreateReport(_ context.Context, userID string, req request.ReportRequest) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.GameID != "" {
		if _, ok := s.games[req.GameID]; !ok {
			return domain.Report{}, ErrGameNotFound
		}
	}
	if req.FolderID != "" {
		if _, ok := s.folders[req.FolderID]; !ok {
			return domain.Report{}, ErrFolderNotFound
		}
	}

	r := domain.Report{
		ID:        uuid.NewString(),
		GameID:    req.GameID,
		FolderID:  req.FolderID,
		Reason:    req.Reason,
		Details:   req.Details,
		CreatedBy: userID,
		CreatedAt: s.now(),
	}
	s.reports = append(s.reports, r)

	return r, nil
}

func (s *Store) Reports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Report{}, s.reports...)
}

package repository

import (
	"context"
	"fmt"

	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/repository/dao"
)

type ProgressDAO interface {
	Upsert(ctx context.Context, p dao.GameProgress) error
	FindByFolder(ctx context.Context, userID, folderID string) ([]dao.GameProgress, error)
	DeleteByFolder(ctx context.Context, userID, folderID string) error
}

type ProgressRepository struct {
	dao ProgressDAO
}

func NewProgressRepository(dao ProgressDAO) *ProgressRepository {
	return &ProgressRepository{
		dao: dao,
	}
}

func (r *ProgressRepository) Save(ctx context.Context, userID, folderID, gameID string, entry domain.ProgressEntry) error {
	err := r.dao.Upsert(ctx, dao.GameProgress{
		UserID:     userID,
		FolderID:   folderID,
		GameID:     gameID,
		Correct:    entry.Correct,
		AnsweredAt: entry.AnsweredAt,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *ProgressRepository) FindByFolder(ctx context.Context, userID, folderID string) (domain.Progress, error) {
	rows, err := r.dao.FindByFolder(ctx, userID, folderID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("r.dao.FindByFolder -> %w", err)
	}

	return r.daoToDomain(folderID, rows), nil
}

// Merge stores every entry of p that is newer than the local one.
func (r *ProgressRepository) Merge(ctx context.Context, userID string, p domain.Progress) error {
	local, err := r.FindByFolder(ctx, userID, p.FolderID)
	if err != nil {
		return err
	}

	for gameID, entry := range p.Entries {
		if cur, ok := local.Entries[gameID]; ok && !entry.AnsweredAt.After(cur.AnsweredAt) {
			continue
		}
		if err := r.Save(ctx, userID, p.FolderID, gameID, entry); err != nil {
			return err
		}
	}

	return nil
}

func (r *ProgressRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if err := r.dao.DeleteByFolder(ctx, userID, folderID); err != nil {
		return fmt.Errorf("r.dao.DeleteByFolder -> %w", err)
	}

	return nil
}

func (r *ProgressRepository) daoToDomain(folderID string, rows []dao.GameProgress) domain.Progress {
	p := domain.NewProgress(folderID)
	for _, row := range rows {
		p.Entries[row.GameID] = domain.ProgressEntry{
			Correct:    row.Correct,
			AnsweredAt: row.AnsweredAt,
		}
	}

	return p
}

package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameProgress is the latest answer a user gave to one game of a folder.
type GameProgress struct {
	UserID     string    `gorm:"primaryKey;size:64"`
	FolderID   string    `gorm:"primaryKey;size:64"`
	GameID     string    `gorm:"primaryKey;size:64"`
	Correct    bool      `gorm:"not null"`
	AnsweredAt time.Time `gorm:"not null"`
}

type ProgressDAO struct {
	db *gorm.DB
}

func NewProgressDAO(db *gorm.DB) *ProgressDAO {
	return &ProgressDAO{
		db: db,
	}
}

func (d *ProgressDAO) Upsert(ctx context.Context, p GameProgress) error {
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "folder_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"correct", "answered_at"}),
	}).Create(&p).Error
}

func (d *ProgressDAO) FindByFolder(ctx context.Context, userID, folderID string) ([]GameProgress, error) {
	var rows []GameProgress
	err := d.db.WithContext(ctx).
		Where("user_id = ? AND folder_id = ?", userID, folderID).
		Order("answered_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ProgressDAO) DeleteByFolder(ctx context.Context, userID, folderID string) error {
	return d.db.WithContext(ctx).
		Where("user_id = ? AND folder_id = ?", userID, folderID).
		Delete(&GameProgress{}).Error
}

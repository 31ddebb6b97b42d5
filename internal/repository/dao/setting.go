package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingNotFound = errors.New("setting not found")

// Setting is one on-device key-value pair (auth token, language, energy).
type Setting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

type SettingDAO struct {
	db *gorm.DB
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{
		db: db,
	}
}

func (d *SettingDAO) FindByKey(ctx context.Context, key string) (Setting, error) {
	var s Setting
	err := d.db.WithContext(ctx).Where(&Setting{Key: key}).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Setting{}, ErrSettingNotFound
		}

		return Setting{}, err
	}

	return s, nil
}

func (d *SettingDAO) Upsert(ctx context.Context, s Setting) error {
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
}

func (d *SettingDAO) Delete(ctx context.Context, key string) error {
	return d.db.WithContext(ctx).Where(&Setting{Key: key}).Delete(&Setting{}).Error
}

package repository

import (
	"context"
	"fmt"

	"github.com/quizcourse/quizcourse/internal/repository/dao"
)

var ErrSettingNotFound = dao.ErrSettingNotFound

type SettingDAO interface {
	FindByKey(ctx context.Context, key string) (dao.Setting, error)
	Upsert(ctx context.Context, s dao.Setting) error
	Delete(ctx context.Context, key string) error
}

// SettingRepository is the on-device key-value storage.
type SettingRepository struct {
	dao SettingDAO
}

func NewSettingRepository(dao SettingDAO) *SettingRepository {
	return &SettingRepository{
		dao: dao,
	}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	s, err := r.dao.FindByKey(ctx, key)
	if err != nil {
		return "", fmt.Errorf("r.dao.FindByKey -> %w", err)
	}

	return s.Value, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	if err := r.dao.Upsert(ctx, dao.Setting{Key: key, Value: value}); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	if err := r.dao.Delete(ctx, key); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

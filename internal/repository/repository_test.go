package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/repository/dao"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestSettingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(dao.NewSettingDAO(openDB(t)))

	_, err := repo.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, repo.Set(ctx, "token", "abc"))
	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	require.NoError(t, repo.Delete(ctx, "token"))
	_, err = repo.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestProgressRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository(dao.NewProgressDAO(openDB(t)))
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, "u1", "f1", "g1", domain.ProgressEntry{Correct: false, AnsweredAt: t0}))
	require.NoError(t, repo.Save(ctx, "u1", "f1", "g2", domain.ProgressEntry{Correct: true, AnsweredAt: t0}))

	p, err := repo.FindByFolder(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.Equal(t, "f1", p.FolderID)
	assert.Equal(t, 2, p.Answered())
	assert.Equal(t, 1, p.Correct())
	assert.Equal(t, 40, p.Percent(5))
	assert.Equal(t, 20, p.CorrectPercent(5))

	remote := domain.NewProgress("f1")
	remote.Entries["g1"] = domain.ProgressEntry{Correct: true, AnsweredAt: t0.Add(time.Hour)}
	remote.Entries["g2"] = domain.ProgressEntry{Correct: false, AnsweredAt: t0.Add(-time.Hour)}
	remote.Entries["g3"] = domain.ProgressEntry{Correct: true, AnsweredAt: t0}
	require.NoError(t, repo.Merge(ctx, "u1", remote))

	p, err = repo.FindByFolder(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Answered())
	assert.True(t, p.Entries["g1"].Correct, "newer remote entry wins")
	assert.True(t, p.Entries["g2"].Correct, "older remote entry is ignored")
	assert.True(t, p.Entries["g3"].Correct)

	require.NoError(t, repo.DeleteFolder(ctx, "u1", "f1"))
	p, err = repo.FindByFolder(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.Zero(t, p.Answered())
	assert.NotNil(t, p.Entries)
}

package dao

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
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func testSettingDAO(t *testing.T, d *SettingDAO) {
	ctx := context.Background()

	_, err := d.FindByKey(ctx, "token")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, d.Upsert(ctx, Setting{Key: "token", Value: "abc"}))
	require.NoError(t, d.Upsert(ctx, Setting{Key: "token", Value: "def"}))
	require.NoError(t, d.Upsert(ctx, Setting{Key: "app.language", Value: "es"}))

	s, err := d.FindByKey(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "def", s.Value)

	require.NoError(t, d.Delete(ctx, "token"))
	_, err = d.FindByKey(ctx, "token")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	lang, err := d.FindByKey(ctx, "app.language")
	require.NoError(t, err)
	assert.Equal(t, "es", lang.Value)

	// Deleting a missing key is not an error.
	require.NoError(t, d.Delete(ctx, "token"))
}

func testProgressDAO(t *testing.T, d *ProgressDAO) {
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, d.Upsert(ctx, GameProgress{UserID: "u1", FolderID: "f1", GameID: "g1", Correct: false, AnsweredAt: t0}))
	require.NoError(t, d.Upsert(ctx, GameProgress{UserID: "u1", FolderID: "f1", GameID: "g2", Correct: true, AnsweredAt: t0.Add(time.Minute)}))
	require.NoError(t, d.Upsert(ctx, GameProgress{UserID: "u1", FolderID: "f1", GameID: "g1", Correct: true, AnsweredAt: t0.Add(2 * time.Minute)}))
	require.NoError(t, d.Upsert(ctx, GameProgress{UserID: "u2", FolderID: "f1", GameID: "g1", Correct: true, AnsweredAt: t0}))
	require.NoError(t, d.Upsert(ctx, GameProgress{UserID: "u1", FolderID: "f2", GameID: "g9", Correct: true, AnsweredAt: t0}))

	rows, err := d.FindByFolder(ctx, "u1", "f1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "g2", rows[0].GameID)
	assert.Equal(t, "g1", rows[1].GameID)
	assert.True(t, rows[1].Correct)

	require.NoError(t, d.DeleteByFolder(ctx, "u1", "f1"))
	rows, err = d.FindByFolder(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = d.FindByFolder(ctx, "u2", "f1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	rows, err = d.FindByFolder(ctx, "u1", "f2")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSettingDAO_SQLite(t *testing.T) {
	testSettingDAO(t, NewSettingDAO(openSQLite(t)))
}

func TestProgressDAO_SQLite(t *testing.T) {
	testProgressDAO(t, NewProgressDAO(openSQLite(t)))
}

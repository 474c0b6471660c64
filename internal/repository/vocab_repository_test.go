// internal/repository/vocab_repository_test.go
package repository_test

import (
	"context"
	"testing"
	"time"

	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupVocabTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Vocab{}))
	return db
}

func seedVocab(t *testing.T, db *gorm.DB, zh, pinyin, vi, tag string, createdAt time.Time) *model.Vocab {
	v := &model.Vocab{
		VocabID:   uuid.New(),
		Zh:        zh,
		Pinyin:    pinyin,
		Vi:        vi,
		SourceTag: tag,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func TestGormVocabRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupVocabTestDB(t)
	repo := repository.NewGormVocabRepository()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// created_at の降順で v5, v4, v3, v2, v1 の順に並ぶ
	v1 := seedVocab(t, db, "你好", "nǐ hǎo", "xin chào", "hsk1", base)
	v2 := seedVocab(t, db, "茶", "chá", "trà", "hsk1", base.Add(1*time.Hour))
	v3 := seedVocab(t, db, "水", "shuǐ", "nước", "hsk1", base.Add(2*time.Hour))
	v4 := seedVocab(t, db, "再见", "zài jiàn", "tạm biệt", "hsk2", base.Add(3*time.Hour))
	v5 := seedVocab(t, db, "谢谢", "xiè xie", "cảm ơn", "hsk2", base.Add(4*time.Hour))

	t.Run("正常系: 条件なしは新しい順の全件", func(t *testing.T) {
		got, err := repo.FindAll(ctx, db, model.VocabListQuery{})
		require.NoError(t, err)
		require.Len(t, got, 5)
		assert.Equal(t, v5.VocabID, got[0].VocabID)
		assert.Equal(t, v1.VocabID, got[4].VocabID)
	})

	t.Run("正常系: タグで絞り込める", func(t *testing.T) {
		got, err := repo.FindAll(ctx, db, model.VocabListQuery{SourceTags: []string{"hsk2"}})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, v5.VocabID, got[0].VocabID)
		assert.Equal(t, v4.VocabID, got[1].VocabID)
	})

	t.Run("正常系: 検索語は漢字・拼音・ベトナム語に部分一致する", func(t *testing.T) {
		got, err := repo.FindAll(ctx, db, model.VocabListQuery{Search: "trà"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, v2.VocabID, got[0].VocabID)

		got, err = repo.FindAll(ctx, db, model.VocabListQuery{Search: "再"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, v4.VocabID, got[0].VocabID)
	})

	t.Run("正常系: pageとlimitでページングされる", func(t *testing.T) {
		got, err := repo.FindAll(ctx, db, model.VocabListQuery{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, v3.VocabID, got[0].VocabID)
		assert.Equal(t, v2.VocabID, got[1].VocabID)
	})

	t.Run("正常系: limitなしのpageは無視される", func(t *testing.T) {
		got, err := repo.FindAll(ctx, db, model.VocabListQuery{Page: 3})
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("正常系: タグと検索の組み合わせ", func(t *testing.T) {
		got, err := repo.FindAll(ctx, db, model.VocabListQuery{SourceTags: []string{"hsk1"}, Search: "nước"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, v3.VocabID, got[0].VocabID)
	})
}

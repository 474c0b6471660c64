//go:generate mockery --name VocabRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabRepository は語彙コーパスへのアクセスを提供します。
// テスト生成が使う Count / SampleRandom もここに含まれます。
type VocabRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocab) error
	FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocab, error)
	FindAll(ctx context.Context, db *gorm.DB, query model.VocabListQuery) ([]*model.Vocab, error)
	Update(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	SampleRandom(ctx context.Context, db *gorm.DB, n int) ([]*model.Vocab, error)
	TagCounts(ctx context.Context, db *gorm.DB) ([]*model.TagCount, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type gormVocabRepository struct{}

func NewGormVocabRepository() VocabRepository {
	return &gormVocabRepository{}
}

func (r *gormVocabRepository) Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocab) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		logger.Error("Error creating vocab in DB",
			"error", result.Error,
			"zh", vocab.Zh,
		)
		return fmt.Errorf("gormVocabRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabRepository) FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocab, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocab
	result := db.WithContext(ctx).Where("vocab_id = ?", vocabID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocab by ID in DB",
			"error", result.Error,
			"vocab_id", vocabID.String(),
		)
		return nil, fmt.Errorf("gormVocabRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

func (r *gormVocabRepository) FindAll(ctx context.Context, db *gorm.DB, q model.VocabListQuery) ([]*model.Vocab, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocab
	query := db.WithContext(ctx).Order("created_at DESC")
	if len(q.SourceTags) > 0 {
		query = query.Where("source_tag IN ?", q.SourceTags)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("zh LIKE ? OR pinyin LIKE ? OR vi LIKE ?", pattern, pattern, pattern)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
		if q.Page > 1 {
			query = query.Offset((q.Page - 1) * q.Limit)
		}
	}
	if result := query.Find(&vocabs); result.Error != nil {
		logger.Error("Error finding vocabs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVocabRepository.FindAll: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabRepository) Update(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Vocab{}).Where("vocab_id = ?", vocabID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating vocab in DB",
			"error", result.Error,
			"vocab_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabRepository) Delete(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Vocab{}, vocabID)
	if result.Error != nil {
		logger.Error("Error deleting vocab in DB",
			"error", result.Error,
			"vocab_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Vocab{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormVocabRepository.Count: %w", result.Error)
	}
	return count, nil
}

// SampleRandom はn件を一様ランダムに（重複なしで）取得します。
// n が母数を超える場合は取得できた分だけ返ります。
func (r *gormVocabRepository) SampleRandom(ctx context.Context, db *gorm.DB, n int) ([]*model.Vocab, error) {
	if n <= 0 {
		return []*model.Vocab{}, nil
	}
	var vocabs []*model.Vocab
	result := db.WithContext(ctx).Order("RANDOM()").Limit(n).Find(&vocabs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormVocabRepository.SampleRandom: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabRepository) TagCounts(ctx context.Context, db *gorm.DB) ([]*model.TagCount, error) {
	var counts []*model.TagCount
	result := db.WithContext(ctx).Model(&model.Vocab{}).
		Select("source_tag, COUNT(*) AS count").
		Group("source_tag").
		Order("source_tag ASC").
		Scan(&counts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormVocabRepository.TagCounts: %w", result.Error)
	}
	return counts, nil
}

// DeleteAll は上書き取り込み用に全件を物理削除します
func (r *gormVocabRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&model.Vocab{})
	if result.Error != nil {
		return fmt.Errorf("gormVocabRepository.DeleteAll: %w", result.Error)
	}
	return nil
}

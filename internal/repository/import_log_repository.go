//go:generate mockery --name ImportLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_hanviet_learn/internal/model"

	"gorm.io/gorm"
)

// ImportLogRepository はファイル取り込み履歴へのアクセスを提供します
type ImportLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.ImportLog) error
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.ImportLog, error)
}

type gormImportLogRepository struct{}

func NewGormImportLogRepository() ImportLogRepository {
	return &gormImportLogRepository{}
}

func (r *gormImportLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.ImportLog) error {
	if result := tx.WithContext(ctx).Create(log); result.Error != nil {
		return fmt.Errorf("gormImportLogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormImportLogRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.ImportLog, error) {
	var logs []*model.ImportLog
	query := db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&logs); result.Error != nil {
		return nil, fmt.Errorf("gormImportLogRepository.FindRecent: %w", result.Error)
	}
	return logs, nil
}

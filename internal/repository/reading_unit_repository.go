//go:generate mockery --name ReadingUnitRepository --output ./mocks --outpkg mocks --case=underscore
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

// ReadingUnitRepository は読解ユニットへのアクセスを提供します
type ReadingUnitRepository interface {
	Create(ctx context.Context, tx *gorm.DB, unit *model.ReadingUnit) error
	FindByID(ctx context.Context, db *gorm.DB, unitID uuid.UUID) (*model.ReadingUnit, error)
	FindAll(ctx context.Context, db *gorm.DB, sourceTags []string, limit int) ([]*model.ReadingUnit, error)
	// FindRecent は例文合成バッチ用に作成日時の降順で取得します
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.ReadingUnit, error)
	FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.ReadingUnit, error)
	TagCounts(ctx context.Context, db *gorm.DB) ([]*model.TagCount, error)
	Delete(ctx context.Context, tx *gorm.DB, unitID uuid.UUID) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type gormReadingUnitRepository struct{}

func NewGormReadingUnitRepository() ReadingUnitRepository {
	return &gormReadingUnitRepository{}
}

func (r *gormReadingUnitRepository) Create(ctx context.Context, tx *gorm.DB, unit *model.ReadingUnit) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(unit)
	if result.Error != nil {
		logger.Error("Error creating reading unit in DB",
			"error", result.Error,
			"unit_title", unit.UnitTitle,
		)
		return fmt.Errorf("gormReadingUnitRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReadingUnitRepository) FindByID(ctx context.Context, db *gorm.DB, unitID uuid.UUID) (*model.ReadingUnit, error) {
	var unit model.ReadingUnit
	result := db.WithContext(ctx).Where("unit_id = ?", unitID).First(&unit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReadingUnitRepository.FindByID: %w", result.Error)
	}
	return &unit, nil
}

func (r *gormReadingUnitRepository) FindAll(ctx context.Context, db *gorm.DB, sourceTags []string, limit int) ([]*model.ReadingUnit, error) {
	var units []*model.ReadingUnit
	query := db.WithContext(ctx).Order("created_at DESC")
	if len(sourceTags) > 0 {
		query = query.Where("source_tag IN ?", sourceTags)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&units); result.Error != nil {
		return nil, fmt.Errorf("gormReadingUnitRepository.FindAll: %w", result.Error)
	}
	return units, nil
}

func (r *gormReadingUnitRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.ReadingUnit, error) {
	var units []*model.ReadingUnit
	query := db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&units); result.Error != nil {
		return nil, fmt.Errorf("gormReadingUnitRepository.FindRecent: %w", result.Error)
	}
	return units, nil
}

func (r *gormReadingUnitRepository) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.ReadingUnit, error) {
	var unit model.ReadingUnit
	result := db.WithContext(ctx).Where("unit_title = ?", title).First(&unit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReadingUnitRepository.FindByTitle: %w", result.Error)
	}
	return &unit, nil
}

func (r *gormReadingUnitRepository) TagCounts(ctx context.Context, db *gorm.DB) ([]*model.TagCount, error) {
	var counts []*model.TagCount
	result := db.WithContext(ctx).
		Model(&model.ReadingUnit{}).
		Select("source_tag, COUNT(*) AS count").
		Group("source_tag").
		Order("source_tag ASC").
		Scan(&counts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReadingUnitRepository.TagCounts: %w", result.Error)
	}
	return counts, nil
}

func (r *gormReadingUnitRepository) Delete(ctx context.Context, tx *gorm.DB, unitID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("unit_id = ?", unitID).Delete(&model.ReadingUnit{})
	if result.Error != nil {
		return fmt.Errorf("gormReadingUnitRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReadingUnitRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ReadingUnit{})
	if result.Error != nil {
		return fmt.Errorf("gormReadingUnitRepository.DeleteAll: %w", result.Error)
	}
	return nil
}

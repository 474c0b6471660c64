//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
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

// LessonRepository は課（文のグルーピング）へのアクセスを提供します
type LessonRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	FindAll(ctx context.Context, db *gorm.DB, sourceTags []string) ([]*model.Lesson, error)
	FindBySourceTag(ctx context.Context, db *gorm.DB, sourceTag string) (*model.Lesson, error)
	FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.Lesson, error)
	TagCounts(ctx context.Context, db *gorm.DB) ([]*model.TagCount, error)
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(lesson)
	if result.Error != nil {
		logger.Error("Error creating lesson in DB",
			"error", result.Error,
			"title", lesson.Title,
		)
		return fmt.Errorf("gormLessonRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) FindAll(ctx context.Context, db *gorm.DB, sourceTags []string) ([]*model.Lesson, error) {
	var lessons []*model.Lesson
	query := db.WithContext(ctx).Order("created_at DESC")
	if len(sourceTags) > 0 {
		query = query.Where("source_tag IN ?", sourceTags)
	}
	if result := query.Find(&lessons); result.Error != nil {
		return nil, fmt.Errorf("gormLessonRepository.FindAll: %w", result.Error)
	}
	return lessons, nil
}

func (r *gormLessonRepository) FindBySourceTag(ctx context.Context, db *gorm.DB, sourceTag string) (*model.Lesson, error) {
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("source_tag = ?", sourceTag).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormLessonRepository.FindBySourceTag: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.Lesson, error) {
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("title = ?", title).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormLessonRepository.FindByTitle: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) TagCounts(ctx context.Context, db *gorm.DB) ([]*model.TagCount, error) {
	var counts []*model.TagCount
	result := db.WithContext(ctx).Model(&model.Lesson{}).
		Select("source_tag, COUNT(*) AS count").
		Group("source_tag").
		Order("source_tag ASC").
		Scan(&counts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormLessonRepository.TagCounts: %w", result.Error)
	}
	return counts, nil
}

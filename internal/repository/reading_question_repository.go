//go:generate mockery --name ReadingQuestionRepository --output ./mocks --outpkg mocks --case=underscore
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

// ReadingQuestionRepository は読解設問へのアクセスを提供します
type ReadingQuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.ReadingQuestion) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.ReadingQuestion, error)
	FindByUnit(ctx context.Context, db *gorm.DB, unitID uuid.UUID) ([]*model.ReadingQuestion, error)
	// FindByIDs はユニット内の設問を ID 指定で一括取得します
	FindByIDs(ctx context.Context, db *gorm.DB, unitID uuid.UUID, questionIDs []uuid.UUID) ([]*model.ReadingQuestion, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	SampleRandom(ctx context.Context, db *gorm.DB, n int) ([]*model.ReadingQuestion, error)
	DeleteByUnit(ctx context.Context, tx *gorm.DB, unitID uuid.UUID) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type gormReadingQuestionRepository struct{}

func NewGormReadingQuestionRepository() ReadingQuestionRepository {
	return &gormReadingQuestionRepository{}
}

func (r *gormReadingQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.ReadingQuestion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		logger.Error("Error creating reading question in DB",
			"error", result.Error,
			"unit_id", question.UnitID.String(),
		)
		return fmt.Errorf("gormReadingQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReadingQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.ReadingQuestion, error) {
	var question model.ReadingQuestion
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReadingQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormReadingQuestionRepository) FindByUnit(ctx context.Context, db *gorm.DB, unitID uuid.UUID) ([]*model.ReadingQuestion, error) {
	var questions []*model.ReadingQuestion
	result := db.WithContext(ctx).Where("unit_id = ?", unitID).Order("created_at ASC").Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReadingQuestionRepository.FindByUnit: %w", result.Error)
	}
	return questions, nil
}

func (r *gormReadingQuestionRepository) FindByIDs(ctx context.Context, db *gorm.DB, unitID uuid.UUID, questionIDs []uuid.UUID) ([]*model.ReadingQuestion, error) {
	if len(questionIDs) == 0 {
		return []*model.ReadingQuestion{}, nil
	}
	var questions []*model.ReadingQuestion
	result := db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Where("question_id IN ?", questionIDs).
		Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReadingQuestionRepository.FindByIDs: %w", result.Error)
	}
	return questions, nil
}

func (r *gormReadingQuestionRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ReadingQuestion{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormReadingQuestionRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormReadingQuestionRepository) SampleRandom(ctx context.Context, db *gorm.DB, n int) ([]*model.ReadingQuestion, error) {
	if n <= 0 {
		return []*model.ReadingQuestion{}, nil
	}
	var questions []*model.ReadingQuestion
	result := db.WithContext(ctx).Order("RANDOM()").Limit(n).Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReadingQuestionRepository.SampleRandom: %w", result.Error)
	}
	return questions, nil
}

func (r *gormReadingQuestionRepository) DeleteByUnit(ctx context.Context, tx *gorm.DB, unitID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("unit_id = ?", unitID).Delete(&model.ReadingQuestion{})
	if result.Error != nil {
		return fmt.Errorf("gormReadingQuestionRepository.DeleteByUnit: %w", result.Error)
	}
	return nil
}

func (r *gormReadingQuestionRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ReadingQuestion{})
	if result.Error != nil {
		return fmt.Errorf("gormReadingQuestionRepository.DeleteAll: %w", result.Error)
	}
	return nil
}

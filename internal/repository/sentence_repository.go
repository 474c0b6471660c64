//go:generate mockery --name SentenceRepository --output ./mocks --outpkg mocks --case=underscore
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

// SentenceRepository は人手で作成された例文へのアクセスを提供します
type SentenceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sentence *model.Sentence) error
	FindByID(ctx context.Context, db *gorm.DB, sentenceID uuid.UUID) (*model.Sentence, error)
	FindAll(ctx context.Context, db *gorm.DB, lessonID *uuid.UUID, limit int) ([]*model.Sentence, error)
	CountByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	SampleRandom(ctx context.Context, db *gorm.DB, n int) ([]*model.Sentence, error)
}

type gormSentenceRepository struct{}

func NewGormSentenceRepository() SentenceRepository {
	return &gormSentenceRepository{}
}

func (r *gormSentenceRepository) Create(ctx context.Context, tx *gorm.DB, sentence *model.Sentence) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(sentence)
	if result.Error != nil {
		logger.Error("Error creating sentence in DB",
			"error", result.Error,
			"lesson_id", sentence.LessonID.String(),
		)
		return fmt.Errorf("gormSentenceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSentenceRepository) FindByID(ctx context.Context, db *gorm.DB, sentenceID uuid.UUID) (*model.Sentence, error) {
	var sentence model.Sentence
	result := db.WithContext(ctx).Where("sentence_id = ?", sentenceID).First(&sentence)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSentenceRepository.FindByID: %w", result.Error)
	}
	return &sentence, nil
}

func (r *gormSentenceRepository) FindAll(ctx context.Context, db *gorm.DB, lessonID *uuid.UUID, limit int) ([]*model.Sentence, error) {
	var sentences []*model.Sentence
	query := db.WithContext(ctx).Preload("Lesson").Order("created_at DESC")
	if lessonID != nil {
		query = query.Where("lesson_id = ?", *lessonID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&sentences); result.Error != nil {
		return nil, fmt.Errorf("gormSentenceRepository.FindAll: %w", result.Error)
	}
	return sentences, nil
}

func (r *gormSentenceRepository) CountByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Sentence{}).Where("lesson_id = ?", lessonID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormSentenceRepository.CountByLesson: %w", result.Error)
	}
	return count, nil
}

func (r *gormSentenceRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Sentence{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormSentenceRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormSentenceRepository) SampleRandom(ctx context.Context, db *gorm.DB, n int) ([]*model.Sentence, error) {
	if n <= 0 {
		return []*model.Sentence{}, nil
	}
	var sentences []*model.Sentence
	result := db.WithContext(ctx).Order("RANDOM()").Limit(n).Find(&sentences)
	if result.Error != nil {
		return nil, fmt.Errorf("gormSentenceRepository.SampleRandom: %w", result.Error)
	}
	return sentences, nil
}

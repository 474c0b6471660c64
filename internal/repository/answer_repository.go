//go:generate mockery --name AnswerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerRepository はセッション内の解答記録へのアクセスを提供します
type AnswerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, answer *model.Answer) error
	CreateBatch(ctx context.Context, tx *gorm.DB, answers []*model.Answer) error
	FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Answer, error)
	CountBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (int64, error)
}

type gormAnswerRepository struct{}

func NewGormAnswerRepository() AnswerRepository {
	return &gormAnswerRepository{}
}

func (r *gormAnswerRepository) Create(ctx context.Context, tx *gorm.DB, answer *model.Answer) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(answer)
	if result.Error != nil {
		logger.Error("Error creating answer in DB",
			"error", result.Error,
			"session_id", answer.SessionID.String(),
		)
		return fmt.Errorf("gormAnswerRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAnswerRepository) CreateBatch(ctx context.Context, tx *gorm.DB, answers []*model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(&answers)
	if result.Error != nil {
		return fmt.Errorf("gormAnswerRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormAnswerRepository) FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Answer, error) {
	var answers []*model.Answer
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at ASC").Find(&answers)
	if result.Error != nil {
		return nil, fmt.Errorf("gormAnswerRepository.FindBySession: %w", result.Error)
	}
	return answers, nil
}

func (r *gormAnswerRepository) CountBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Answer{}).Where("session_id = ?", sessionID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormAnswerRepository.CountBySession: %w", result.Error)
	}
	return count, nil
}

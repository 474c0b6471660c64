//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

// SessionRepository は学習セッションへのアクセスを提供します
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.Session) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.Session, error)
	Update(ctx context.Context, tx *gorm.DB, session *model.Session) error
	// FindByUser はユーザーのセッション履歴を開始日時の降順で取得します
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Session, error)
	FindAllByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Session, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.Session) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating session in DB",
			"error", result.Error,
			"user_id", session.UserID.String(),
			"mode", string(session.Mode),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.Session, error) {
	var session model.Session
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) Update(ctx context.Context, tx *gorm.DB, session *model.Session) error {
	result := tx.WithContext(ctx).Save(session)
	if result.Error != nil {
		return fmt.Errorf("gormSessionRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Session, error) {
	var sessions []*model.Session
	query := db.WithContext(ctx).Where("user_id = ?", userID).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&sessions); result.Error != nil {
		return nil, fmt.Errorf("gormSessionRepository.FindByUser: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormSessionRepository) FindAllByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Session, error) {
	var sessions []*model.Session
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("started_at DESC").Find(&sessions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormSessionRepository.FindAllByUser: %w", result.Error)
	}
	return sessions, nil
}

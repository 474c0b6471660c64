//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_hanviet_learn/internal/model"

	"gorm.io/gorm"
)

// TokenRepository はメール確認・パスワードリセット用トークンへのアクセスを提供します
type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, tx *gorm.DB, token *model.UserVerificationToken) error
	FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error)
	DeleteVerificationToken(ctx context.Context, tx *gorm.DB, token string) error
	CreatePasswordResetToken(ctx context.Context, tx *gorm.DB, token *model.PasswordResetToken) error
	FindPasswordResetToken(ctx context.Context, db *gorm.DB, token string) (*model.PasswordResetToken, error)
	DeletePasswordResetToken(ctx context.Context, tx *gorm.DB, token string) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) CreateVerificationToken(ctx context.Context, tx *gorm.DB, token *model.UserVerificationToken) error {
	if result := tx.WithContext(ctx).Create(token); result.Error != nil {
		return fmt.Errorf("gormTokenRepository.CreateVerificationToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error) {
	var record model.UserVerificationToken
	result := db.WithContext(ctx).Where("token = ?", token).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTokenRepository.FindVerificationToken: %w", result.Error)
	}
	return &record, nil
}

func (r *gormTokenRepository) DeleteVerificationToken(ctx context.Context, tx *gorm.DB, token string) error {
	result := tx.WithContext(ctx).Where("token = ?", token).Delete(&model.UserVerificationToken{})
	if result.Error != nil {
		return fmt.Errorf("gormTokenRepository.DeleteVerificationToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) CreatePasswordResetToken(ctx context.Context, tx *gorm.DB, token *model.PasswordResetToken) error {
	if result := tx.WithContext(ctx).Create(token); result.Error != nil {
		return fmt.Errorf("gormTokenRepository.CreatePasswordResetToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) FindPasswordResetToken(ctx context.Context, db *gorm.DB, token string) (*model.PasswordResetToken, error) {
	var record model.PasswordResetToken
	result := db.WithContext(ctx).Where("token = ?", token).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTokenRepository.FindPasswordResetToken: %w", result.Error)
	}
	return &record, nil
}

func (r *gormTokenRepository) DeletePasswordResetToken(ctx context.Context, tx *gorm.DB, token string) error {
	result := tx.WithContext(ctx).Where("token = ?", token).Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		return fmt.Errorf("gormTokenRepository.DeletePasswordResetToken: %w", result.Error)
	}
	return nil
}

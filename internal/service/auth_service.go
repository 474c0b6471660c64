// internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	VerifyAccount(ctx context.Context, tokenString string) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

// Register は新しいユーザーを登録し、有効化メールを送信します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "Email này đã được sử dụng", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", err)
		}

		// ユーザー名での重複チェック
		_, err = s.userRepo.FindByName(ctx, tx, req.Name)
		if err == nil {
			logger.Warn("User name already exists", "name", req.Name)
			return model.NewAppError("DUPLICATE_NAME", "Tên người dùng này đã được sử dụng", "name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi xử lý mật khẩu", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			IsActive:     false,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// レースコンディションで重複制約に当たった場合
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "Tên hoặc email đã được sử dụng", "name,email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tạo tài khoản", "", err)
		}
		newUser = user

		tokenString, err := s.generateAndSaveVerificationToken(ctx, tx, newUser.UserID)
		if err != nil {
			return err
		}

		if err := s.sendVerificationEmail(ctx, newUser.Email, tokenString); err != nil {
			return model.NewAppError("EMAIL_SEND_FAILED", "Không thể gửi email xác nhận. Vui lòng thử lại sau", "", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("User registered and verification email sent", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

// VerifyAccount は提供されたトークンを検証し、アカウントを有効化します
func (s *authService) VerifyAccount(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindVerificationToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found", "token", tokenString)
				return model.NewAppError("INVALID_TOKEN", "Liên kết không hợp lệ hoặc đã được sử dụng", "token", model.ErrInvalidInput)
			}
			logger.Error("Error finding verification token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Verification token expired", "token", tokenString, "expires_at", token.ExpiresAt)
			_ = s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "Liên kết đã hết hạn", "token", model.ErrInvalidInput)
		}

		updateResult := tx.Model(&model.User{}).Where("user_id = ?", token.UserID).Update("is_active", true)
		if updateResult.Error != nil {
			logger.Error("Failed to activate user account", "error", updateResult.Error, "user_id", token.UserID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể kích hoạt tài khoản", "", updateResult.Error)
		}
		if updateResult.RowsAffected == 0 {
			logger.Error("User not found during activation", "user_id", token.UserID)
			return model.NewAppError("NOT_FOUND", "Không tìm thấy tài khoản", "", model.ErrNotFound)
		}

		// 使用済みトークンの削除に失敗しても処理は続行する
		if err := s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used verification token", "error", err, "token", tokenString)
		}

		logger.Info("Account verified successfully", "user_id", token.UserID)
		return nil
	})
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Email hoặc mật khẩu không đúng", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Email hoặc mật khẩu không đúng", "", model.ErrInvalidInput)
	}

	if !user.IsActive {
		logger.Warn("Login failed: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "Tài khoản chưa được kích hoạt. Vui lòng kiểm tra email đăng ký", "", model.ErrForbidden)
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    config.AppName,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWT.ExpiresHours) * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tạo token", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: signedToken}, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "Không tìm thấy người dùng", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", err)
	}
	return user, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Password reset requested for non-existent email")
			// ユーザーの存在を悟られないように成功として扱う
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", err)
	}

	tokenString, err := s.generateAndSavePasswordResetToken(ctx, s.db, user.UserID)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.Frontend.BaseURL, tokenString)
	subject := "[HanVietLearn] Đặt lại mật khẩu"
	body := fmt.Sprintf("Nhấn vào liên kết sau để đặt lại mật khẩu:\n%s\n\nLiên kết có hiệu lực trong 1 giờ.", resetURL)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return model.NewAppError("EMAIL_SEND_FAILED", "Không thể gửi email", "", err)
	}

	logger.Info("Password reset email sent")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindPasswordResetToken(ctx, tx, tokenString)
		if err != nil {
			return model.NewAppError("INVALID_TOKEN", "Liên kết không hợp lệ hoặc đã được sử dụng", "token", model.ErrInvalidInput)
		}
		if time.Now().After(token.ExpiresAt) {
			_ = s.tokenRepo.DeletePasswordResetToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "Liên kết đã hết hạn", "token", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi xử lý mật khẩu", "", err)
		}

		result := tx.Model(&model.User{}).Where("user_id = ?", token.UserID).Update("password_hash", string(hashedPassword))
		if result.Error != nil || result.RowsAffected == 0 {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể cập nhật mật khẩu", "", result.Error)
		}

		if err := s.tokenRepo.DeletePasswordResetToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used password reset token", "error", err)
		}

		logger.Info("Password reset successfully", "user_id", token.UserID)
		return nil
	})
}

// --- ヘルパー関数 ---

func (s *authService) generateAndSaveVerificationToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (string, error) {
	logger := middleware.GetLogger(ctx)
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		logger.Error("Failed to generate random bytes for token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tạo token", "", err)
	}
	tokenString := hex.EncodeToString(tokenBytes)

	verificationToken := &model.UserVerificationToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := s.tokenRepo.CreateVerificationToken(ctx, tx, verificationToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể lưu token", "", err)
	}
	return tokenString, nil
}

func (s *authService) sendVerificationEmail(ctx context.Context, email, token string) error {
	logger := middleware.GetLogger(ctx)
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.Frontend.BaseURL, token)
	subject := "[HanVietLearn] Kích hoạt tài khoản"
	body := fmt.Sprintf("Cảm ơn bạn đã đăng ký HanVietLearn.\n\nNhấn vào liên kết sau để kích hoạt tài khoản:\n%s\n\nLiên kết có hiệu lực trong 24 giờ.", verifyURL)

	logger.Info("Sending verification email", "to", email)
	return s.mailer.Send(ctx, email, subject, body)
}

func (s *authService) generateAndSavePasswordResetToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tạo token", "", err)
	}
	tokenString := hex.EncodeToString(tokenBytes)
	resetToken := &model.PasswordResetToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := s.tokenRepo.CreatePasswordResetToken(ctx, tx, resetToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể lưu token", "", err)
	}
	return tokenString, nil
}

// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			// 1. Authorization ヘッダーからトークンを取得
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Vui lòng đăng nhập.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header không hợp lệ.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// 2. JWTをパースし、署名と有効期限を検証
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				// 署名アルゴリズムが期待通り(HS256)かチェック
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token không hợp lệ hoặc đã hết hạn.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "Token không hợp lệ.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// 3. ペイロードから subject (ユーザーID) を取得
			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token không chứa thông tin người dùng.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token không hợp lệ.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// リクエストコンテキストにユーザーIDをセット
			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFinder はユーザーの参照だけを切り出したインターフェース。
// repository パッケージはこのパッケージの GetLogger に依存するため、
// 具象リポジトリ型をここで参照すると循環になる
type UserFinder interface {
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
}

// AdminOnlyMiddleware は認証済みユーザーが管理者であることを確認するミドルウェア。
// JWTAuthMiddleware の後段に置くことを前提とします
func AdminOnlyMiddleware(db *gorm.DB, userRepo UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			userID, err := GetUserIDFromContext(r.Context())
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}

			user, err := userRepo.FindByID(r.Context(), db, userID)
			if err != nil {
				logger.Warn("Admin check failed: user lookup error", "user_id", userID.String(), "error", err)
				appErr := model.NewAppError("FORBIDDEN", "Bạn không có quyền thực hiện thao tác này.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			if !user.IsAdmin {
				logger.Warn("Admin check failed: user is not an admin", "user_id", userID.String())
				appErr := model.NewAppError("FORBIDDEN", "Bạn không có quyền thực hiện thao tác này.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext はコンテキストから認証済みユーザーIDを取得します
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		// コンテキストにユーザーIDが見つからない（ミドルウェアが正しく動作していない等の内部エラー）
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Lỗi server", "", model.ErrInternalServer)
	}
	return value, nil
}

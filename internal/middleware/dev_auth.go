// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			log.Println("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "[DEV] Unauthorized: Missing X-User-ID header"},
			}, nil)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: Invalid X-User-ID format: %s", userIDStr)
			webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "[DEV] Unauthorized: Invalid X-User-ID format"},
			}, nil)
			return
		}

		// DB検証はスキップ
		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

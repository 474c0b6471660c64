// internal/middleware/auth_test.go
package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminOnlyMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		withUser       bool
		setupMock      func(userRepo *mocks.UserRepository)
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:     "正常系: 管理者は後続ハンドラに到達する",
			withUser: true,
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByID", mock.Anything, mock.Anything, userID).
					Return(&model.User{UserID: userID, IsAdmin: true}, nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:     "異常系: 管理者でないユーザーは403",
			withUser: true,
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByID", mock.Anything, mock.Anything, userID).
					Return(&model.User{UserID: userID, IsAdmin: false}, nil).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "異常系: ユーザーの参照に失敗したら403",
			withUser: true,
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByID", mock.Anything, mock.Anything, userID).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "異常系: コンテキストにユーザーIDが無ければ500",
			withUser:   false,
			setupMock:  func(userRepo *mocks.UserRepository) {},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.UserRepository)
			tt.setupMock(mockUserRepo)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})
			handler := middleware.AdminOnlyMiddleware(nil, mockUserRepo)(next)

			req := httptest.NewRequest(http.MethodPost, "/admin/import", nil)
			if tt.withUser {
				req = req.WithContext(context.WithValue(req.Context(), model.UserIDKey, userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

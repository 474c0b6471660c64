// internal/handlers/session_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_hanviet_learn/internal/handlers"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/service/mocks"
)

func TestSessionHandler_PostSession(t *testing.T) {
	// --- セットアップ ---
	testUserID := uuid.New()

	mockSessionService := mocks.NewMockSessionService(t)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/sessions", sessionHandler.PostSession)
	// ------------------

	validReqBody := model.PostSessionRequest{Mode: "vocab"}
	createdSession := &model.Session{
		SessionID: uuid.New(),
		UserID:    testUserID,
		Mode:      model.ModeVocab,
		StartedAt: time.Now(),
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "正常系: vocabモードのセッション開始",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockSessionService.On("CreateSession", mock.AnythingOfType("*context.valueCtx"), testUserID, &validReqBody).
					Return(createdSession, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 許可されていないモード",
			userID:         &testUserID,
			body:           model.PostSessionRequest{Mode: "listening"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 認証情報なし",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/sessions", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var respSession model.Session
				err := json.Unmarshal(rr.Body.Bytes(), &respSession)
				assert.NoError(t, err)
				assert.Equal(t, createdSession.SessionID, respSession.SessionID)
				// スコアは完了まで未設定
				assert.Nil(t, respSession.Summary.Score)
			}

			mockSessionService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_CompleteSession(t *testing.T) {
	testUserID := uuid.New()

	mockSessionService := mocks.NewMockSessionService(t)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/sessions/{session_id}/complete", sessionHandler.CompleteSession)

	sessionID := uuid.New()
	score := 67
	now := time.Now()
	completedSession := &model.Session{
		SessionID:   sessionID,
		UserID:      testUserID,
		Mode:        model.ModeVocab,
		Summary:     model.SessionSummary{Total: 3, Correct: 2, Incorrect: 1, Score: &score},
		CompletedAt: &now,
	}

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "正常系: セッション完了でスコア確定",
			target: fmt.Sprintf("/api/v1/sessions/%s/complete", sessionID),
			setupMock: func() {
				mockSessionService.On("CompleteSession", mock.AnythingOfType("*context.valueCtx"), testUserID, sessionID).
					Return(completedSession, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: UUID形式でないセッションID",
			target:         "/api/v1/sessions/not-a-uuid/complete",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "異常系: 他ユーザーのセッション",
			target: fmt.Sprintf("/api/v1/sessions/%s/complete", sessionID),
			setupMock: func() {
				mockSessionService.On("CompleteSession", mock.AnythingOfType("*context.valueCtx"), testUserID, sessionID).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", tc.target, nil, &testUserID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var respSession model.Session
				err := json.Unmarshal(rr.Body.Bytes(), &respSession)
				assert.NoError(t, err)
				if assert.NotNil(t, respSession.Summary.Score) {
					assert.Equal(t, 67, *respSession.Summary.Score)
				}
				assert.NotNil(t, respSession.CompletedAt)
			}

			mockSessionService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_GetProgress(t *testing.T) {
	testUserID := uuid.New()

	mockSessionService := mocks.NewMockSessionService(t)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/progress", sessionHandler.GetProgress)

	progress := &model.ProgressResponse{
		Summary: model.ProgressSummary{
			TotalSessions:  3,
			TotalQuestions: 10,
			TotalCorrect:   6,
			TotalIncorrect: 4,
			Accuracy:       60,
		},
		ModeStats: map[string]model.ModeStat{
			"vocab":   {Total: 6, Correct: 5, Incorrect: 1},
			"reading": {Total: 4, Correct: 1, Incorrect: 3},
		},
	}

	t.Run("正常系: 進捗統計を返す", func(t *testing.T) {
		mockSessionService.On("GetProgress", mock.AnythingOfType("*context.valueCtx"), testUserID).
			Return(progress, nil).Once()

		req := createRequest(t, "GET", "/api/v1/progress", nil, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.ProgressResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, 60, resp.Summary.Accuracy)
		assert.Len(t, resp.ModeStats, 2)
		mockSessionService.AssertExpectations(t)
	})

	t.Run("異常系: Serviceがエラーを返す", func(t *testing.T) {
		mockSessionService.On("GetProgress", mock.AnythingOfType("*context.valueCtx"), testUserID).
			Return(nil, model.ErrInternalServer).Once()

		req := createRequest(t, "GET", "/api/v1/progress", nil, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockSessionService.AssertExpectations(t)
	})
}

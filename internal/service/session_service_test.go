// internal/service/session_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBSession() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testSessionConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			SessionHistoryLimit: 50,
		},
	}
}

func Test_sessionService_CreateSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	svc := NewSessionService(db, mockSessionRepo, mockAnswerRepo, testSessionConfig())

	userID := uuid.New()

	tests := []struct {
		name      string
		req       *model.PostSessionRequest
		setupMock func(sessionRepo *mocks.SessionRepository)
		wantErr   error
	}{
		{
			name: "正常系: セッション作成成功",
			req:  &model.PostSessionRequest{Mode: "vocab"},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Run(func(args mock.Arguments) {
						session := args.Get(2).(*model.Session)
						assert.Equal(t, userID, session.UserID)
						assert.Equal(t, model.ModeVocab, session.Mode)
						assert.Nil(t, session.Summary.Score)
						assert.Nil(t, session.CompletedAt)
					}).Return(nil).Once()
			},
		},
		{
			name: "異常系: 不正なモード",
			req:  &model.PostSessionRequest{Mode: "listening"},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: DBエラー",
			req:  &model.PostSessionRequest{Mode: "test"},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessionRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSessionRepo)
			}

			session, err := svc.CreateSession(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.NotEqual(t, uuid.Nil, session.SessionID)
			}

			mockSessionRepo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_RecordAnswer(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	svc := NewSessionService(db, mockSessionRepo, mockAnswerRepo, testSessionConfig())

	userID := uuid.New()
	sessionID := uuid.New()
	correctAnswer := true

	openSession := func() *model.Session {
		return &model.Session{
			SessionID: sessionID,
			UserID:    userID,
			Mode:      model.ModeVocab,
			StartedAt: time.Now(),
		}
	}
	validReq := func() *model.PostAnswerRequest {
		return &model.PostAnswerRequest{
			SessionID:    sessionID.String(),
			QuestionID:   uuid.New().String(),
			QuestionType: "vocab",
			UserAnswer:   "你好",
			Correct:      &correctAnswer,
		}
	}

	tests := []struct {
		name      string
		req       *model.PostAnswerRequest
		setupMock func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository)
		wantErr   error
	}{
		{
			name: "正常系: 回答が追記され集計が1進む",
			req:  validReq(),
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(openSession(), nil).Once()
				answerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Answer")).
					Run(func(args mock.Arguments) {
						answer := args.Get(2).(*model.Answer)
						assert.Equal(t, sessionID, answer.SessionID)
						assert.True(t, answer.Correct)
					}).Return(nil).Once()
				sessionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Run(func(args mock.Arguments) {
						session := args.Get(2).(*model.Session)
						assert.Equal(t, 1, session.Summary.Total)
						assert.Equal(t, 1, session.Summary.Correct)
						assert.Equal(t, 0, session.Summary.Incorrect)
						// スコアは complete まで未設定
						assert.Nil(t, session.Summary.Score)
					}).Return(nil).Once()
			},
		},
		{
			name: "異常系: session_idがUUIDでない",
			req: &model.PostAnswerRequest{
				SessionID:    "not-a-uuid",
				QuestionID:   "q1",
				QuestionType: "vocab",
				UserAnswer:   "a",
				Correct:      &correctAnswer,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 他人のセッション",
			req:  validReq(),
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository) {
				other := openSession()
				other.UserID = uuid.New()
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(other, nil).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 確定済みのセッションには追記できない",
			req:  validReq(),
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository) {
				completed := openSession()
				now := time.Now()
				completed.CompletedAt = &now
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(completed, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: トランザクション内でDBエラー",
			req:  validReq(),
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(openSession(), nil).Once()
				answerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Answer")).
					Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessionRepo.Mock = mock.Mock{}
			mockAnswerRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSessionRepo, mockAnswerRepo)
			}

			answer, err := svc.RecordAnswer(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, answer)
			} else {
				require.NoError(t, err)
				require.NotNil(t, answer)
			}

			mockSessionRepo.AssertExpectations(t)
			mockAnswerRepo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_CompleteSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	svc := NewSessionService(db, mockSessionRepo, mockAnswerRepo, testSessionConfig())

	userID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(sessionRepo *mocks.SessionRepository)
		wantErr   error
		wantScore *int
	}{
		{
			name: "正常系: 累積の集計からスコアが計算される",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				session := &model.Session{
					SessionID: sessionID,
					UserID:    userID,
					Mode:      model.ModeVocab,
					Summary:   model.SessionSummary{Total: 3, Correct: 2, Incorrect: 1},
					StartedAt: time.Now(),
				}
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(session, nil).Once()
				sessionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
			},
			wantScore: intPtr(67), // round(100*2/3)
		},
		{
			name: "正常系: 回答0件はスコア0",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				session := &model.Session{
					SessionID: sessionID,
					UserID:    userID,
					Mode:      model.ModeVocab,
					StartedAt: time.Now(),
				}
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(session, nil).Once()
				sessionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
			},
			wantScore: intPtr(0),
		},
		{
			name: "正常系: 確定済みなら何もせずそのまま返す（冪等）",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				now := time.Now()
				score := 50
				session := &model.Session{
					SessionID:   sessionID,
					UserID:      userID,
					Mode:        model.ModeVocab,
					Summary:     model.SessionSummary{Total: 2, Correct: 1, Incorrect: 1, Score: &score},
					StartedAt:   now,
					CompletedAt: &now,
				}
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(session, nil).Once()
				// Update は呼ばれないはず
			},
			wantScore: intPtr(50),
		},
		{
			name: "異常系: 他人のセッション",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				session := &model.Session{
					SessionID: sessionID,
					UserID:    uuid.New(),
					Mode:      model.ModeVocab,
					StartedAt: time.Now(),
				}
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(session, nil).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessionRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSessionRepo)
			}

			session, err := svc.CompleteSession(ctx, userID, sessionID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.NotNil(t, session.CompletedAt)
				require.NotNil(t, session.Summary.Score)
				assert.Equal(t, *tt.wantScore, *session.Summary.Score)
			}

			mockSessionRepo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_GetProgress(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	svc := NewSessionService(db, mockSessionRepo, mockAnswerRepo, testSessionConfig())

	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(sessionRepo *mocks.SessionRepository)
		wantErr   error
		check     func(t *testing.T, got *model.ProgressResponse)
	}{
		{
			name: "正常系: モード別の集計と正答率が計算される",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessions := []*model.Session{
					{Mode: model.ModeVocab, Summary: model.SessionSummary{Total: 4, Correct: 3, Incorrect: 1}},
					{Mode: model.ModeVocab, Summary: model.SessionSummary{Total: 2, Correct: 2}},
					{Mode: model.ModeReading, Summary: model.SessionSummary{Total: 4, Correct: 1, Incorrect: 3}},
				}
				sessionRepo.On("FindAllByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(sessions, nil).Once()
			},
			check: func(t *testing.T, got *model.ProgressResponse) {
				assert.Equal(t, 3, got.Summary.TotalSessions)
				assert.Equal(t, 10, got.Summary.TotalQuestions)
				assert.Equal(t, 6, got.Summary.TotalCorrect)
				assert.Equal(t, 4, got.Summary.TotalIncorrect)
				assert.Equal(t, 60, got.Summary.Accuracy)
				assert.Equal(t, model.ModeStat{Total: 6, Correct: 5, Incorrect: 1}, got.ModeStats["vocab"])
				assert.Equal(t, model.ModeStat{Total: 4, Correct: 1, Incorrect: 3}, got.ModeStats["reading"])
			},
		},
		{
			name: "正常系: セッションが無ければ正答率は0",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindAllByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return([]*model.Session{}, nil).Once()
			},
			check: func(t *testing.T, got *model.ProgressResponse) {
				assert.Equal(t, 0, got.Summary.TotalSessions)
				assert.Equal(t, 0, got.Summary.Accuracy)
				assert.Empty(t, got.ModeStats)
			},
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindAllByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessionRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSessionRepo)
			}

			got, err := svc.GetProgress(ctx, userID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				if tt.check != nil {
					tt.check(t, got)
				}
			}

			mockSessionRepo.AssertExpectations(t)
		})
	}
}

func intPtr(i int) *int {
	return &i
}

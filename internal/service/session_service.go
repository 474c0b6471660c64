// internal/service/session_service.go
package service

import (
	"context"
	"math"
	"time"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService は練習モードのセッション管理と学習進捗の集計を提供します。
// テストモードの一括採点は TestService 側にあります。
type SessionService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, req *model.PostSessionRequest) (*model.Session, error)
	RecordAnswer(ctx context.Context, userID uuid.UUID, req *model.PostAnswerRequest) (*model.Answer, error)
	CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.Session, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.Session, error)
	ListMySessions(ctx context.Context, userID uuid.UUID) ([]*model.Session, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (*model.ProgressResponse, error)
}

type sessionService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	answerRepo  repository.AnswerRepository
	cfg         *config.Config
}

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepository, answerRepo repository.AnswerRepository, cfg *config.Config) SessionService {
	return &sessionService{
		db:          db,
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		cfg:         cfg,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID uuid.UUID, req *model.PostSessionRequest) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	if !model.ValidSessionMode(req.Mode) {
		return nil, model.NewAppError("INVALID_MODE", "Chế độ học không hợp lệ", "mode", model.ErrInvalidInput)
	}

	session := &model.Session{
		SessionID: uuid.New(),
		UserID:    userID,
		Mode:      model.SessionMode(req.Mode),
		StartedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Error("Error creating session", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	return session, nil
}

// RecordAnswer は練習モードの回答を1件追記し、セッションの集計を1ずつ進めます。
// 正誤はクライアントで判定済みのものをそのまま記録します。
// スコアは CompleteSession が呼ばれるまで未設定のままです。
func (s *sessionService) RecordAnswer(ctx context.Context, userID uuid.UUID, req *model.PostAnswerRequest) (*model.Answer, error) {
	logger := middleware.GetLogger(ctx)

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, model.NewAppError("INVALID_SESSION_ID", "ID phiên học không hợp lệ", "session_id", model.ErrInvalidInput)
	}

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, model.ErrNotFound
	}
	// 確定済みのセッションには追記できない
	if session.CompletedAt != nil {
		return nil, model.NewAppError("SESSION_COMPLETED", "Phiên học đã kết thúc", "", model.ErrConflict)
	}

	answer := &model.Answer{
		AnswerID:     uuid.New(),
		SessionID:    sessionID,
		QuestionID:   req.QuestionID,
		QuestionType: model.QuestionKind(req.QuestionType),
		UserAnswer:   req.UserAnswer,
		Correct:      *req.Correct,
	}

	session.Summary.Total++
	if answer.Correct {
		session.Summary.Correct++
	} else {
		session.Summary.Incorrect++
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.Create(ctx, tx, answer); err != nil {
			return err
		}
		return s.sessionRepo.Update(ctx, tx, session)
	})
	if err != nil {
		logger.Error("Error recording answer", "error", err, "session_id", sessionID.String())
		return nil, model.ErrInternalServer
	}
	return answer, nil
}

// CompleteSession は練習セッションを確定し、累積の集計からスコアを計算します。
func (s *sessionService) CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, model.ErrNotFound
	}
	if session.CompletedAt != nil {
		return session, nil
	}

	// 回答が1件も無い場合はゼロ除算を避けてスコアは 0
	score := 0
	if session.Summary.Total > 0 {
		score = int(math.Round(100 * float64(session.Summary.Correct) / float64(session.Summary.Total)))
	}
	now := time.Now()
	session.Summary.Score = &score
	session.CompletedAt = &now

	if err := s.sessionRepo.Update(ctx, s.db, session); err != nil {
		logger.Error("Error completing session", "error", err, "session_id", sessionID.String())
		return nil, model.ErrInternalServer
	}
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, model.ErrNotFound
	}
	return session, nil
}

func (s *sessionService) ListMySessions(ctx context.Context, userID uuid.UUID) ([]*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	sessions, err := s.sessionRepo.FindByUser(ctx, s.db, userID, s.cfg.App.SessionHistoryLimit)
	if err != nil {
		logger.Error("Error listing sessions", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	return sessions, nil
}

// GetProgress はユーザーの全セッションから学習進捗の統計を集計します
func (s *sessionService) GetProgress(ctx context.Context, userID uuid.UUID) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx)

	sessions, err := s.sessionRepo.FindAllByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing sessions for progress", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}

	resp := &model.ProgressResponse{
		ModeStats: make(map[string]model.ModeStat),
	}
	for _, session := range sessions {
		resp.Summary.TotalSessions++
		resp.Summary.TotalQuestions += session.Summary.Total
		resp.Summary.TotalCorrect += session.Summary.Correct
		resp.Summary.TotalIncorrect += session.Summary.Incorrect

		stat := resp.ModeStats[string(session.Mode)]
		stat.Total += session.Summary.Total
		stat.Correct += session.Summary.Correct
		stat.Incorrect += session.Summary.Incorrect
		resp.ModeStats[string(session.Mode)] = stat
	}
	if resp.Summary.TotalQuestions > 0 {
		resp.Summary.Accuracy = int(math.Round(100 * float64(resp.Summary.TotalCorrect) / float64(resp.Summary.TotalQuestions)))
	}
	return resp, nil
}

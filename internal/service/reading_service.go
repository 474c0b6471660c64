// internal/service/reading_service.go
package service

import (
	"context"
	"errors"
	"math"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadingService は読解ユニットと設問の管理、ユニット単位の採点を提供します
type ReadingService interface {
	CreateUnit(ctx context.Context, req *model.PostReadingUnitRequest) (*model.ReadingUnit, error)
	GetUnit(ctx context.Context, unitID uuid.UUID) (*model.ReadingUnitDetail, error)
	ListUnits(ctx context.Context, sourceTags []string, limit int) ([]*model.ReadingUnit, error)
	DeleteUnit(ctx context.Context, unitID uuid.UUID) error
	CreateQuestion(ctx context.Context, unitID uuid.UUID, req *model.PostReadingQuestionRequest) (*model.ReadingQuestion, error)
	ListQuestions(ctx context.Context, unitID uuid.UUID) ([]*model.ReadingQuestion, error)
	GradeUnit(ctx context.Context, unitID uuid.UUID, req *model.GradeUnitRequest) (*model.GradeUnitResponse, error)
	GetTagCounts(ctx context.Context) ([]*model.TagCount, error)
}

type readingService struct {
	db           *gorm.DB
	unitRepo     repository.ReadingUnitRepository
	questionRepo repository.ReadingQuestionRepository
}

func NewReadingService(db *gorm.DB, unitRepo repository.ReadingUnitRepository, questionRepo repository.ReadingQuestionRepository) ReadingService {
	return &readingService{
		db:           db,
		unitRepo:     unitRepo,
		questionRepo: questionRepo,
	}
}

func (s *readingService) CreateUnit(ctx context.Context, req *model.PostReadingUnitRequest) (*model.ReadingUnit, error) {
	logger := middleware.GetLogger(ctx)

	unit := &model.ReadingUnit{
		UnitID:      uuid.New(),
		UnitTitle:   req.UnitTitle,
		ZhParagraph: req.ZhParagraph,
		ViParagraph: req.ViParagraph,
		SourceTag:   req.SourceTag,
	}
	if err := s.unitRepo.Create(ctx, s.db, unit); err != nil {
		logger.Error("Error creating reading unit", "error", err)
		return nil, model.ErrInternalServer
	}
	return unit, nil
}

func (s *readingService) GetUnit(ctx context.Context, unitID uuid.UUID) (*model.ReadingUnitDetail, error) {
	logger := middleware.GetLogger(ctx)

	unit, err := s.unitRepo.FindByID(ctx, s.db, unitID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.FindByUnit(ctx, s.db, unitID)
	if err != nil {
		logger.Error("Error loading questions for unit", "error", err, "unit_id", unitID.String())
		return nil, model.ErrInternalServer
	}
	if questions == nil {
		questions = []*model.ReadingQuestion{}
	}
	return &model.ReadingUnitDetail{
		ReadingUnit: *unit,
		Questions:   questions,
	}, nil
}

func (s *readingService) ListUnits(ctx context.Context, sourceTags []string, limit int) ([]*model.ReadingUnit, error) {
	logger := middleware.GetLogger(ctx)

	units, err := s.unitRepo.FindAll(ctx, s.db, sourceTags, limit)
	if err != nil {
		logger.Error("Error listing reading units", "error", err)
		return nil, model.ErrInternalServer
	}
	return units, nil
}

// DeleteUnit はユニットと配下の設問をまとめて削除します
func (s *readingService) DeleteUnit(ctx context.Context, unitID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.DeleteByUnit(ctx, tx, unitID); err != nil {
			return err
		}
		return s.unitRepo.Delete(ctx, tx, unitID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting reading unit", "error", err, "unit_id", unitID.String())
		return model.ErrInternalServer
	}
	return nil
}

func (s *readingService) CreateQuestion(ctx context.Context, unitID uuid.UUID, req *model.PostReadingQuestionRequest) (*model.ReadingQuestion, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.unitRepo.FindByID(ctx, s.db, unitID); err != nil {
		return nil, err
	}

	questionType := model.ReadingQuestionType(req.QuestionType)
	if questionType == "" {
		questionType = model.QuestionTypeMCQ
	}
	difficulty := model.ReadingDifficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	question := &model.ReadingQuestion{
		QuestionID:   uuid.New(),
		UnitID:       unitID,
		Question:     req.Question,
		Options:      req.Options,
		Answer:       req.Answer,
		QuestionType: questionType,
		Difficulty:   difficulty,
	}
	if err := s.questionRepo.Create(ctx, s.db, question); err != nil {
		logger.Error("Error creating reading question", "error", err, "unit_id", unitID.String())
		return nil, model.ErrInternalServer
	}
	return question, nil
}

func (s *readingService) ListQuestions(ctx context.Context, unitID uuid.UUID) ([]*model.ReadingQuestion, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.unitRepo.FindByID(ctx, s.db, unitID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByUnit(ctx, s.db, unitID)
	if err != nil {
		logger.Error("Error listing reading questions", "error", err, "unit_id", unitID.String())
		return nil, model.ErrInternalServer
	}
	return questions, nil
}

// GradeUnit はユニット内の設問に対する回答（questionId -> 回答文字列）を
// 一括で採点します。未知の questionId は無視し、回答されなかった設問は
// 採点対象に含めません。
func (s *readingService) GradeUnit(ctx context.Context, unitID uuid.UUID, req *model.GradeUnitRequest) (*model.GradeUnitResponse, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.unitRepo.FindByID(ctx, s.db, unitID); err != nil {
		return nil, err
	}

	questionIDs := make([]uuid.UUID, 0, len(req.Answers))
	for rawID := range req.Answers {
		id, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		questionIDs = append(questionIDs, id)
	}

	questions, err := s.questionRepo.FindByIDs(ctx, s.db, unitID, questionIDs)
	if err != nil {
		logger.Error("Error loading questions for grading", "error", err, "unit_id", unitID.String())
		return nil, model.ErrInternalServer
	}

	results := make([]model.GradeUnitResult, 0, len(questions))
	correct := 0
	for _, q := range questions {
		submitted := req.Answers[q.QuestionID.String()]
		isCorrect, canonical := GradeReadingAnswer(q, submitted)
		if isCorrect {
			correct++
		}
		results = append(results, model.GradeUnitResult{
			QuestionID:    q.QuestionID.String(),
			Question:      q.Question,
			UserAnswer:    submitted,
			CorrectAnswer: canonical,
			Correct:       isCorrect,
		})
	}

	total := len(results)
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}
	return &model.GradeUnitResponse{
		UnitID:  unitID.String(),
		Total:   total,
		Correct: correct,
		Score:   score,
		Results: results,
	}, nil
}

func (s *readingService) GetTagCounts(ctx context.Context) ([]*model.TagCount, error) {
	logger := middleware.GetLogger(ctx)

	counts, err := s.unitRepo.TagCounts(ctx, s.db)
	if err != nil {
		logger.Error("Error counting reading unit tags", "error", err)
		return nil, model.ErrInternalServer
	}
	return counts, nil
}

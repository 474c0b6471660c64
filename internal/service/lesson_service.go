// internal/service/lesson_service.go
package service

import (
	"context"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonService は課と、課に属する例文を扱います。
// 課に人手の例文が無い場合、一覧は読解ユニットからの自動生成文で補います。
type LessonService interface {
	CreateLesson(ctx context.Context, req *model.PostLessonRequest) (*model.Lesson, error)
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*model.LessonDetail, error)
	ListLessons(ctx context.Context, sourceTags []string) ([]*model.LessonWithCount, error)
	GetTagCounts(ctx context.Context) ([]*model.TagCount, error)
	CreateSentence(ctx context.Context, lessonID uuid.UUID, req *model.PostSentenceRequest) (*model.Sentence, error)
	ListSentences(ctx context.Context, lessonID *uuid.UUID, limit int) (*model.SentenceListResponse, error)
}

type lessonService struct {
	db           *gorm.DB
	lessonRepo   repository.LessonRepository
	sentenceRepo repository.SentenceRepository
	generator    SentenceGeneratorService
	cfg          *config.Config
}

func NewLessonService(db *gorm.DB, lessonRepo repository.LessonRepository, sentenceRepo repository.SentenceRepository, generator SentenceGeneratorService, cfg *config.Config) LessonService {
	return &lessonService{
		db:           db,
		lessonRepo:   lessonRepo,
		sentenceRepo: sentenceRepo,
		generator:    generator,
		cfg:          cfg,
	}
}

func (s *lessonService) CreateLesson(ctx context.Context, req *model.PostLessonRequest) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)

	lesson := &model.Lesson{
		LessonID:    uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		SourceTag:   req.SourceTag,
	}
	if err := s.lessonRepo.Create(ctx, s.db, lesson); err != nil {
		logger.Error("Error creating lesson", "error", err)
		return nil, model.ErrInternalServer
	}
	return lesson, nil
}

func (s *lessonService) GetLesson(ctx context.Context, lessonID uuid.UUID) (*model.LessonDetail, error) {
	logger := middleware.GetLogger(ctx)

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, err
	}

	sentences, err := s.sentenceRepo.FindAll(ctx, s.db, &lessonID, 0)
	if err != nil {
		logger.Error("Error loading sentences for lesson", "error", err, "lesson_id", lessonID.String())
		return nil, model.ErrInternalServer
	}
	if sentences == nil {
		sentences = []*model.Sentence{}
	}
	return &model.LessonDetail{
		Lesson:    *lesson,
		Sentences: sentences,
	}, nil
}

func (s *lessonService) ListLessons(ctx context.Context, sourceTags []string) ([]*model.LessonWithCount, error) {
	logger := middleware.GetLogger(ctx)

	lessons, err := s.lessonRepo.FindAll(ctx, s.db, sourceTags)
	if err != nil {
		logger.Error("Error listing lessons", "error", err)
		return nil, model.ErrInternalServer
	}

	withCounts := make([]*model.LessonWithCount, 0, len(lessons))
	for _, lesson := range lessons {
		count, err := s.sentenceRepo.CountByLesson(ctx, s.db, lesson.LessonID)
		if err != nil {
			logger.Error("Error counting sentences", "error", err, "lesson_id", lesson.LessonID.String())
			return nil, model.ErrInternalServer
		}
		withCounts = append(withCounts, &model.LessonWithCount{
			Lesson:        *lesson,
			SentenceCount: count,
		})
	}
	return withCounts, nil
}

func (s *lessonService) GetTagCounts(ctx context.Context) ([]*model.TagCount, error) {
	logger := middleware.GetLogger(ctx)

	counts, err := s.lessonRepo.TagCounts(ctx, s.db)
	if err != nil {
		logger.Error("Error counting lesson tags", "error", err)
		return nil, model.ErrInternalServer
	}
	return counts, nil
}

func (s *lessonService) CreateSentence(ctx context.Context, lessonID uuid.UUID, req *model.PostSentenceRequest) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.lessonRepo.FindByID(ctx, s.db, lessonID); err != nil {
		return nil, err
	}

	sentence := &model.Sentence{
		SentenceID:    uuid.New(),
		LessonID:      lessonID,
		Zh:            req.Zh,
		Vi:            req.Vi,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.sentenceRepo.Create(ctx, s.db, sentence); err != nil {
		logger.Error("Error creating sentence", "error", err, "lesson_id", lessonID.String())
		return nil, model.ErrInternalServer
	}
	return sentence, nil
}

// ListSentences は人手の例文を返します。1件も無い場合は読解ユニットから
// 自動生成した文で補い、Generated フラグを立てて返します。
// 生成文のIDは一時的なもので、リクエストをまたいだ参照には使えません。
func (s *lessonService) ListSentences(ctx context.Context, lessonID *uuid.UUID, limit int) (*model.SentenceListResponse, error) {
	logger := middleware.GetLogger(ctx)

	sentences, err := s.sentenceRepo.FindAll(ctx, s.db, lessonID, limit)
	if err != nil {
		logger.Error("Error listing sentences", "error", err)
		return nil, model.ErrInternalServer
	}
	if len(sentences) > 0 {
		return &model.SentenceListResponse{
			Sentences: sentences,
			Total:     len(sentences),
			Generated: false,
		}, nil
	}

	genLimit := limit
	if genLimit <= 0 {
		genLimit = s.cfg.App.GeneratedSentenceLimit
	}
	generated, err := s.generator.Generate(ctx, genLimit)
	if err != nil {
		logger.Error("Error generating sentences for listing", "error", err)
		return nil, model.ErrInternalServer
	}
	if lessonID != nil {
		filtered := make([]*model.GeneratedSentence, 0, len(generated))
		for _, g := range generated {
			if g.Lesson != nil && g.Lesson.LessonID == *lessonID {
				filtered = append(filtered, g)
			}
		}
		generated = filtered
	}
	return &model.SentenceListResponse{
		Sentences: generated,
		Total:     len(generated),
		Generated: true,
	}, nil
}

// internal/service/sentence_generator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SentenceGeneratorService は読解ユニットの段落から一時的な例文を合成します。
// 人手で作成された例文が無い場合のフォールバックとして TestService からも使われます。
type SentenceGeneratorService interface {
	Generate(ctx context.Context, limit int) ([]*model.GeneratedSentence, error)
}

type sentenceGeneratorService struct {
	db         *gorm.DB
	unitRepo   repository.ReadingUnitRepository
	lessonRepo repository.LessonRepository
	cfg        *config.Config
}

func NewSentenceGeneratorService(db *gorm.DB, unitRepo repository.ReadingUnitRepository, lessonRepo repository.LessonRepository, cfg *config.Config) SentenceGeneratorService {
	return &sentenceGeneratorService{
		db:         db,
		unitRepo:   unitRepo,
		lessonRepo: lessonRepo,
		cfg:        cfg,
	}
}

// Generate は読解ユニットを新しい順に走査し、段落を文に分割して
// limit 件まで GeneratedSentence を合成します。
// 課は source_tag（無ければ unit_title）をキーに upsert し、
// 同じキーは1回の呼び出し内でキャッシュして重複作成を防ぎます。
// キャッシュは呼び出しごとに捨てます（プロセス全体で持つとタグの
// 付け替えに追従できないため）。
// いずれかの collaborator でエラーが出た場合は部分結果を返さず全体を失敗させます。
func (s *sentenceGeneratorService) Generate(ctx context.Context, limit int) ([]*model.GeneratedSentence, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 {
		return []*model.GeneratedSentence{}, nil
	}

	scanLimit := s.cfg.App.UnitScanLimit
	units, err := s.unitRepo.FindRecent(ctx, s.db, scanLimit)
	if err != nil {
		logger.Error("Error listing reading units for sentence generation", "error", err)
		return nil, model.ErrInternalServer
	}

	// 課のキャッシュ。この合成パスの中でのみ有効。
	lessonCache := make(map[string]*model.Lesson)

	generated := make([]*model.GeneratedSentence, 0, limit)
	for _, unit := range units {
		pairs := SegmentParagraphs(unit.ZhParagraph, unit.ViParagraph)
		if len(pairs) == 0 {
			continue
		}

		lesson, err := s.resolveLesson(ctx, lessonCache, unit)
		if err != nil {
			logger.Error("Error resolving lesson for generated sentences",
				"error", err,
				"unit_id", unit.UnitID.String(),
			)
			return nil, model.ErrInternalServer
		}

		for _, pair := range pairs {
			// 連番はユニット内ではなく全体の生成済み件数
			generated = append(generated, &model.GeneratedSentence{
				ID:        fmt.Sprintf("gen_%s_%d", unit.UnitID.String(), len(generated)),
				Lesson:    lesson,
				Zh:        pair.Zh,
				Vi:        pair.Vi,
				CreatedAt: unit.CreatedAt,
				UpdatedAt: unit.UpdatedAt,
			})
			// 上限に達したらユニットの途中でも打ち切る
			if len(generated) >= limit {
				return generated, nil
			}
		}
	}

	return generated, nil
}

// resolveLesson は source_tag（無ければ unit_title）をキーに課を取得し、
// 無ければ作成します。
func (s *sentenceGeneratorService) resolveLesson(ctx context.Context, cache map[string]*model.Lesson, unit *model.ReadingUnit) (*model.Lesson, error) {
	key := unit.SourceTag
	byTag := key != ""
	if !byTag {
		key = unit.UnitTitle
	}

	if lesson, ok := cache[key]; ok {
		return lesson, nil
	}

	var (
		lesson *model.Lesson
		err    error
	)
	if byTag {
		lesson, err = s.lessonRepo.FindBySourceTag(ctx, s.db, key)
	} else {
		lesson, err = s.lessonRepo.FindByTitle(ctx, s.db, key)
	}
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		title := unit.UnitTitle
		if title == "" {
			title = fmt.Sprintf("Bài %s", unit.SourceTag)
		}
		lesson = &model.Lesson{
			LessonID:    uuid.New(),
			Title:       title,
			Description: fmt.Sprintf("Bài học từ %s", title),
			SourceTag:   unit.SourceTag,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.lessonRepo.Create(ctx, s.db, lesson); err != nil {
			return nil, err
		}
	}

	cache[key] = lesson
	return lesson, nil
}

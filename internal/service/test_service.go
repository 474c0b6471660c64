// internal/service/test_service.go
package service

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestService は混合テストの組み立てと提出（一括採点）を提供します
type TestService interface {
	AssembleTest(ctx context.Context, userID uuid.UUID, req *model.AssembleTestRequest) (*model.AssembleTestResponse, error)
	SubmitTest(ctx context.Context, userID, sessionID uuid.UUID, req *model.SubmitTestRequest) (*model.SubmitTestResponse, error)
}

type testService struct {
	db           *gorm.DB
	vocabRepo    repository.VocabRepository
	sentenceRepo repository.SentenceRepository
	questionRepo repository.ReadingQuestionRepository
	sessionRepo  repository.SessionRepository
	answerRepo   repository.AnswerRepository
	generator    SentenceGeneratorService
	cfg          *config.Config

	// シャッフル用の乱数源。テストで決定的なものに差し替えられるよう注入します。
	// rand.Rand は並行安全ではないので mutex で守ります。
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewTestService(
	db *gorm.DB,
	vocabRepo repository.VocabRepository,
	sentenceRepo repository.SentenceRepository,
	questionRepo repository.ReadingQuestionRepository,
	sessionRepo repository.SessionRepository,
	answerRepo repository.AnswerRepository,
	generator SentenceGeneratorService,
	cfg *config.Config,
	rng *rand.Rand,
) TestService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &testService{
		db:           db,
		vocabRepo:    vocabRepo,
		sentenceRepo: sentenceRepo,
		questionRepo: questionRepo,
		sessionRepo:  sessionRepo,
		answerRepo:   answerRepo,
		generator:    generator,
		cfg:          cfg,
		rng:          rng,
	}
}

// assembledItem はシャッフル前の候補1件。正解情報は候補段階でも持ちません。
type assembledItem struct {
	item model.TestItem
}

// AssembleTest は語彙・例文・読解の3カテゴリから比率に従ってテストを組み立てます。
// 目標数はカテゴリごとに round(count * ratio) で独立に計算します。
// 比率の合計が1である必要はなく、再正規化もしません（合計が count に
// 届かないことがあるのは想定どおりの挙動）。
// カテゴリのプールが目標数より少なければあるだけ使い、空なら黙って0問になります。
// セッションは items を返す前に作成するので、0問でも提出先として有効です。
func (s *testService) AssembleTest(ctx context.Context, userID uuid.UUID, req *model.AssembleTestRequest) (*model.AssembleTestResponse, error) {
	logger := middleware.GetLogger(ctx)

	count := req.Count
	if count <= 0 {
		count = s.cfg.App.TestCount
	}
	vocabRatio := s.cfg.App.VocabRatio
	if req.VocabRatio != nil {
		vocabRatio = *req.VocabRatio
	}
	sentenceRatio := s.cfg.App.SentenceRatio
	if req.SentenceRatio != nil {
		sentenceRatio = *req.SentenceRatio
	}
	readingRatio := s.cfg.App.ReadingRatio
	if req.ReadingRatio != nil {
		readingRatio = *req.ReadingRatio
	}
	if vocabRatio < 0 || sentenceRatio < 0 || readingRatio < 0 {
		return nil, model.NewAppError("INVALID_RATIO", "Tỷ lệ câu hỏi không được âm", "", model.ErrInvalidInput)
	}

	vocabTarget := int(math.Round(float64(count) * vocabRatio))
	sentenceTarget := int(math.Round(float64(count) * sentenceRatio))
	readingTarget := int(math.Round(float64(count) * readingRatio))

	candidates := make([]assembledItem, 0, vocabTarget+sentenceTarget+readingTarget)

	// 語彙
	if vocabTarget > 0 {
		vocabs, err := s.vocabRepo.SampleRandom(ctx, s.db, vocabTarget)
		if err != nil {
			logger.Error("Error sampling vocabs for test", "error", err, "target", vocabTarget)
			return nil, model.ErrInternalServer
		}
		for _, v := range vocabs {
			candidates = append(candidates, assembledItem{item: model.TestItem{
				ID:         v.VocabID.String(),
				Kind:       model.KindVocab,
				PromptText: v.Vi,
				Pinyin:     v.Pinyin,
			}})
		}
	}

	// 例文。人手の例文が無い場合は読解ユニットからの自動生成にフォールバックします。
	if sentenceTarget > 0 {
		sentences, err := s.sentenceRepo.SampleRandom(ctx, s.db, sentenceTarget)
		if err != nil {
			logger.Error("Error sampling sentences for test", "error", err, "target", sentenceTarget)
			return nil, model.ErrInternalServer
		}
		if len(sentences) > 0 {
			for _, sen := range sentences {
				candidates = append(candidates, assembledItem{item: model.TestItem{
					ID:         sen.SentenceID.String(),
					Kind:       model.KindSentence,
					PromptText: sen.Zh,
					Options:    sen.Options,
				}})
			}
		} else {
			generated, err := s.generator.Generate(ctx, sentenceTarget)
			if err != nil {
				logger.Error("Error generating sentences for test", "error", err, "target", sentenceTarget)
				return nil, model.ErrInternalServer
			}
			for _, g := range generated {
				candidates = append(candidates, assembledItem{item: model.TestItem{
					ID:         g.ID,
					Kind:       model.KindSentence,
					PromptText: g.Zh,
				}})
			}
		}
	}

	// 読解
	if readingTarget > 0 {
		questions, err := s.questionRepo.SampleRandom(ctx, s.db, readingTarget)
		if err != nil {
			logger.Error("Error sampling reading questions for test", "error", err, "target", readingTarget)
			return nil, model.ErrInternalServer
		}
		for _, q := range questions {
			candidates = append(candidates, assembledItem{item: model.TestItem{
				ID:         q.QuestionID.String(),
				Kind:       model.KindReading,
				PromptText: q.Question,
				Options:    q.Options,
			}})
		}
	}

	// 全体をシャッフルしてから count 件に切り詰める
	s.rngMu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	s.rngMu.Unlock()
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	session := &model.Session{
		SessionID: uuid.New(),
		UserID:    userID,
		Mode:      model.ModeTest,
		StartedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Error("Error creating test session", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}

	items := make([]model.TestItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, c.item)
	}

	return &model.AssembleTestResponse{
		SessionID: session.SessionID.String(),
		Items:     items,
	}, nil
}

// SubmitTest は提出された回答を一括で採点し、セッションを確定します。
// 集計はこの提出バッチ全体から計算し直す上書きセマンティクスです
// （練習モードの逐次加算とは別物）。
func (s *testService) SubmitTest(ctx context.Context, userID, sessionID uuid.UUID, req *model.SubmitTestRequest) (*model.SubmitTestResponse, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}
	// 他人のセッションは存在しないのと同じ扱いにする
	if session.UserID != userID {
		return nil, model.ErrNotFound
	}

	results := make([]model.ItemResult, 0, len(req.Answers))
	records := make([]*model.Answer, 0, len(req.Answers))
	// 内訳は回答が1件もないカテゴリも含めて常に3キー返す
	breakdown := map[model.QuestionKind]model.KindBreakdown{
		model.KindVocab:    {},
		model.KindSentence: {},
		model.KindReading:  {},
	}
	correct := 0

	for _, sub := range req.Answers {
		kind := model.QuestionKind(sub.Kind)
		isCorrect, canonical := s.gradeSubmission(ctx, kind, sub.ItemID, sub.SubmittedText)

		if isCorrect {
			correct++
		}
		b := breakdown[kind]
		b.Total++
		if isCorrect {
			b.Correct++
		}
		breakdown[kind] = b

		results = append(results, model.ItemResult{
			ItemID:          sub.ItemID,
			Kind:            kind,
			SubmittedText:   sub.SubmittedText,
			CanonicalAnswer: canonical,
			IsCorrect:       isCorrect,
		})
		records = append(records, &model.Answer{
			AnswerID:     uuid.New(),
			SessionID:    sessionID,
			QuestionID:   sub.ItemID,
			QuestionType: kind,
			UserAnswer:   sub.SubmittedText,
			Correct:      isCorrect,
		})
	}

	total := len(req.Answers)
	// total が 0 の場合のゼロ除算を避けてスコアは 0 にする
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}

	now := time.Now()
	session.Summary = model.SessionSummary{
		Total:     total,
		Correct:   correct,
		Incorrect: total - correct,
		Score:     &score,
	}
	session.CompletedAt = &now

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.CreateBatch(ctx, tx, records); err != nil {
			return err
		}
		return s.sessionRepo.Update(ctx, tx, session)
	})
	if err != nil {
		logger.Error("Error finalizing test session", "error", err, "session_id", sessionID.String())
		return nil, model.ErrInternalServer
	}

	return &model.SubmitTestResponse{
		SessionID: sessionID.String(),
		Score:     score,
		Total:     total,
		Correct:   correct,
		Incorrect: total - correct,
		Breakdown: breakdown,
		Results:   results,
	}, nil
}

// gradeSubmission は実IDで正解エンティティを引き直して採点します。
// 生成文の一時ID（gen_...）は生成のたびに変わり参照先を持たないため、
// UUIDとして解釈できないIDや存在しないIDは正解文字列なしの不正解として扱います。
// 採点は入力不正でエラーを返しません。
func (s *testService) gradeSubmission(ctx context.Context, kind model.QuestionKind, itemID, submitted string) (bool, string) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return false, ""
	}

	switch kind {
	case model.KindVocab:
		vocab, err := s.vocabRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return false, ""
		}
		return GradeVocabAnswer(vocab, submitted)
	case model.KindSentence:
		sentence, err := s.sentenceRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return false, ""
		}
		return GradeSentenceAnswer(sentence, submitted)
	case model.KindReading:
		question, err := s.questionRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return false, ""
		}
		return GradeReadingAnswer(question, submitted)
	}
	return false, ""
}

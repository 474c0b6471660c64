// internal/service/sentence_generator_test.go
package service

import (
	"context"
	"errors"
	"fmt"
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

func setupTestDBGenerator() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testGeneratorConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			UnitScanLimit: 20,
		},
	}
}

func Test_sentenceGeneratorService_Generate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGenerator()

	unitA := &model.ReadingUnit{
		UnitID:      uuid.New(),
		UnitTitle:   "Bài 1",
		ZhParagraph: "你好。今天天气不错！",
		ViParagraph: "Xin chào. Hôm nay trời đẹp!",
		SourceTag:   "hsk1",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	unitB := &model.ReadingUnit{
		UnitID:      uuid.New(),
		UnitTitle:   "Bài 2",
		ZhParagraph: "我喜欢茶。再见。",
		ViParagraph: "Tôi thích trà. Tạm biệt.",
		SourceTag:   "hsk1",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	untitled := &model.ReadingUnit{
		UnitID:      uuid.New(),
		ZhParagraph: "明天见。",
		ViParagraph: "Hẹn gặp lại ngày mai.",
		SourceTag:   "hsk2",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	untagged := &model.ReadingUnit{
		UnitID:      uuid.New(),
		UnitTitle:   "Bài không tag",
		ZhParagraph: "谢谢。",
		ViParagraph: "Cảm ơn.",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	hskLesson := &model.Lesson{LessonID: uuid.New(), Title: "hsk1", SourceTag: "hsk1"}

	tests := []struct {
		name      string
		limit     int
		setupMock func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository)
		wantErr   error
		check     func(t *testing.T, got []*model.GeneratedSentence)
	}{
		{
			name:  "正常系: 段落が文ペアに分割され一時IDが振られる",
			limit: 10,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return([]*model.ReadingUnit{unitA}, nil).Once()
				lessonRepo.On("FindBySourceTag", ctx, mock.AnythingOfType("*gorm.DB"), "hsk1").
					Return(hskLesson, nil).Once()
			},
			check: func(t *testing.T, got []*model.GeneratedSentence) {
				require.Len(t, got, 2)
				assert.Equal(t, fmt.Sprintf("gen_%s_0", unitA.UnitID), got[0].ID)
				assert.Equal(t, "你好", got[0].Zh)
				assert.Equal(t, "Xin chào", got[0].Vi)
				assert.Equal(t, fmt.Sprintf("gen_%s_1", unitA.UnitID), got[1].ID)
				assert.Equal(t, "今天天气不错", got[1].Zh)
				assert.Same(t, hskLesson, got[0].Lesson)
			},
		},
		{
			name:  "正常系: 同じタグの課は1回の呼び出し内でキャッシュされる",
			limit: 10,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return([]*model.ReadingUnit{unitA, unitB}, nil).Once()
				// 2ユニットとも hsk1 だが検索は1回だけのはず
				lessonRepo.On("FindBySourceTag", ctx, mock.AnythingOfType("*gorm.DB"), "hsk1").
					Return(hskLesson, nil).Once()
			},
			check: func(t *testing.T, got []*model.GeneratedSentence) {
				require.Len(t, got, 4)
				assert.Same(t, got[0].Lesson, got[3].Lesson)
				// 連番はユニットをまたいで通しで増える
				assert.Equal(t, fmt.Sprintf("gen_%s_1", unitA.UnitID), got[1].ID)
				assert.Equal(t, fmt.Sprintf("gen_%s_2", unitB.UnitID), got[2].ID)
				assert.Equal(t, fmt.Sprintf("gen_%s_3", unitB.UnitID), got[3].ID)
			},
		},
		{
			name:  "正常系: 上限に達したらユニットの途中でも打ち切る",
			limit: 3,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return([]*model.ReadingUnit{unitA, unitB}, nil).Once()
				lessonRepo.On("FindBySourceTag", ctx, mock.AnythingOfType("*gorm.DB"), "hsk1").
					Return(hskLesson, nil).Once()
			},
			check: func(t *testing.T, got []*model.GeneratedSentence) {
				require.Len(t, got, 3)
				assert.Equal(t, "我喜欢茶", got[2].Zh)
			},
		},
		{
			name:  "正常系: タグが無いユニットはタイトルで課を引く",
			limit: 10,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return([]*model.ReadingUnit{untagged}, nil).Once()
				lessonRepo.On("FindByTitle", ctx, mock.AnythingOfType("*gorm.DB"), "Bài không tag").
					Return(nil, model.ErrNotFound).Once()
				lessonRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Lesson")).
					Run(func(args mock.Arguments) {
						lesson := args.Get(2).(*model.Lesson)
						assert.Equal(t, "Bài không tag", lesson.Title)
						assert.Equal(t, "Bài học từ Bài không tag", lesson.Description)
						assert.Empty(t, lesson.SourceTag)
						assert.NotEqual(t, uuid.Nil, lesson.LessonID)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, got []*model.GeneratedSentence) {
				require.Len(t, got, 1)
				assert.Equal(t, "谢谢", got[0].Zh)
			},
		},
		{
			name:  "正常系: タイトルが無いユニットの課はタグから命名される",
			limit: 10,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return([]*model.ReadingUnit{untitled}, nil).Once()
				lessonRepo.On("FindBySourceTag", ctx, mock.AnythingOfType("*gorm.DB"), "hsk2").
					Return(nil, model.ErrNotFound).Once()
				lessonRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Lesson")).
					Run(func(args mock.Arguments) {
						lesson := args.Get(2).(*model.Lesson)
						assert.Equal(t, "Bài hsk2", lesson.Title)
						assert.Equal(t, "Bài học từ Bài hsk2", lesson.Description)
						assert.Equal(t, "hsk2", lesson.SourceTag)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, got []*model.GeneratedSentence) {
				require.Len(t, got, 1)
			},
		},
		{
			name:  "正常系: limitが0以下なら何もせず空を返す",
			limit: 0,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				// リポジトリは呼ばれないはず
			},
			check: func(t *testing.T, got []*model.GeneratedSentence) {
				assert.Empty(t, got)
			},
		},
		{
			name:  "異常系: ユニット取得でDBエラーなら全体を失敗させる",
			limit: 10,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name:  "異常系: 課の作成でDBエラーなら部分結果を返さない",
			limit: 10,
			setupMock: func(unitRepo *mocks.ReadingUnitRepository, lessonRepo *mocks.LessonRepository) {
				unitRepo.On("FindRecent", ctx, mock.AnythingOfType("*gorm.DB"), 20).
					Return([]*model.ReadingUnit{untagged}, nil).Once()
				lessonRepo.On("FindByTitle", ctx, mock.AnythingOfType("*gorm.DB"), "Bài không tag").
					Return(nil, model.ErrNotFound).Once()
				lessonRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Lesson")).
					Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	mockUnitRepo := new(mocks.ReadingUnitRepository)
	mockLessonRepo := new(mocks.LessonRepository)
	generator := NewSentenceGeneratorService(db, mockUnitRepo, mockLessonRepo, testGeneratorConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUnitRepo.Mock = mock.Mock{}
			mockLessonRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockUnitRepo, mockLessonRepo)
			}

			got, err := generator.Generate(ctx, tt.limit)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				if tt.check != nil {
					tt.check(t, got)
				}
			}

			mockUnitRepo.AssertExpectations(t)
			mockLessonRepo.AssertExpectations(t)
		})
	}
}

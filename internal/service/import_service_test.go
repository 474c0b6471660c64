// internal/service/import_service_test.go
package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBImport() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// buildSheet はテスト用の xlsx をメモリ上で組み立てます
func buildSheet(t *testing.T, rows [][]string) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func Test_resolveHeaders(t *testing.T) {
	tests := []struct {
		name      string
		headerRow []string
		want      map[string]int
	}{
		{
			name:      "正常系: 中国語ヘッダーのエイリアスを解決できる",
			headerRow: []string{"中文", "拼音", "Việt"},
			want:      map[string]int{"zh": 0, "pinyin": 1, "vi": 2},
		},
		{
			name:      "正常系: 大文字小文字と前後の空白は無視される",
			headerRow: []string{" ZH ", "PINYIN", "vi"},
			want:      map[string]int{"zh": 0, "pinyin": 1, "vi": 2},
		},
		{
			name:      "正常系: エイリアスは優先順で解決される",
			headerRow: []string{"hanzi", "中文", "vi"},
			want:      map[string]int{"zh": 1, "vi": 2}, // 中文 が hanzi より優先
		},
		{
			name:      "正常系: 解決できない列は含まれない",
			headerRow: []string{"不明な列", "vi"},
			want:      map[string]int{"vi": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveHeaders(tt.headerRow, vocabHeaderAliases)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_cellAt(t *testing.T) {
	columns := map[string]int{"zh": 0, "vi": 2}
	row := []string{" 你好 ", "nǐ hǎo"}

	assert.Equal(t, "你好", cellAt(row, columns, "zh"))
	// 行が短くて列が存在しない場合は空文字
	assert.Equal(t, "", cellAt(row, columns, "vi"))
	// 解決されていない列も空文字
	assert.Equal(t, "", cellAt(row, columns, "pinyin"))
}

func Test_importService_ImportVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBImport()

	tests := []struct {
		name      string
		rows      [][]string
		mode      model.ImportMode
		setupMock func(vocabRepo *mocks.VocabRepository, importLogRepo *mocks.ImportLogRepository)
		wantErr   error
		check     func(t *testing.T, log *model.ImportLog)
	}{
		{
			name: "正常系: 行単位のエラーは記録して続行する",
			rows: [][]string{
				{"中文", "拼音", "Việt", "tag"},
				{"你好", "nǐ hǎo", "xin chào", "hsk1"},
				{"", "quē", "thiếu", "hsk1"}, // 中文が空 → 失敗行
				{"再见", "zài jiàn", "tạm biệt", "hsk1"},
			},
			mode: model.ImportModeAppend,
			setupMock: func(vocabRepo *mocks.VocabRepository, importLogRepo *mocks.ImportLogRepository) {
				vocabRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocab")).
					Return(nil).Twice()
				importLogRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ImportLog")).
					Return(nil).Once()
			},
			check: func(t *testing.T, log *model.ImportLog) {
				assert.Equal(t, 3, log.Result.Total)
				assert.Equal(t, 2, log.Result.Success)
				assert.Equal(t, 1, log.Result.Failed)
				require.Len(t, log.Result.Errors, 1)
				assert.Contains(t, log.Result.Errors[0], "dòng 3")
				assert.Equal(t, model.ImportTypeVocabulary, log.FileType)
				assert.Equal(t, model.ImportModeAppend, log.Mode)
			},
		},
		{
			name: "正常系: overwriteモードは既存データを全削除してから取り込む",
			rows: [][]string{
				{"zh", "pinyin", "vi"},
				{"你好", "nǐ hǎo", "xin chào"},
			},
			mode: model.ImportModeOverwrite,
			setupMock: func(vocabRepo *mocks.VocabRepository, importLogRepo *mocks.ImportLogRepository) {
				vocabRepo.On("DeleteAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(nil).Once()
				vocabRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocab")).
					Return(nil).Once()
				importLogRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ImportLog")).
					Return(nil).Once()
			},
			check: func(t *testing.T, log *model.ImportLog) {
				assert.Equal(t, 1, log.Result.Success)
			},
		},
		{
			name: "異常系: ヘッダー行しか無いファイル",
			rows: [][]string{
				{"zh", "pinyin", "vi"},
			},
			mode:      model.ImportModeAppend,
			setupMock: func(vocabRepo *mocks.VocabRepository, importLogRepo *mocks.ImportLogRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 中国語の列が見つからない",
			rows: [][]string{
				{"pinyin", "vi"},
				{"nǐ hǎo", "xin chào"},
			},
			mode:      model.ImportModeAppend,
			setupMock: func(vocabRepo *mocks.VocabRepository, importLogRepo *mocks.ImportLogRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVocabRepo := new(mocks.VocabRepository)
			mockUnitRepo := new(mocks.ReadingUnitRepository)
			mockQuestionRepo := new(mocks.ReadingQuestionRepository)
			mockImportLogRepo := new(mocks.ImportLogRepository)
			if tt.setupMock != nil {
				tt.setupMock(mockVocabRepo, mockImportLogRepo)
			}

			svc := NewImportService(db, mockVocabRepo, mockUnitRepo, mockQuestionRepo, mockImportLogRepo)

			log, err := svc.ImportVocabulary(ctx, "vocab.xlsx", buildSheet(t, tt.rows), tt.mode)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, log)
			} else {
				require.NoError(t, err)
				require.NotNil(t, log)
				if tt.check != nil {
					tt.check(t, log)
				}
			}

			mockVocabRepo.AssertExpectations(t)
			mockImportLogRepo.AssertExpectations(t)
		})
	}
}

func Test_importService_ImportReadingUnits(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBImport()

	rows := [][]string{
		{"unit_title", "zh_paragraph", "vi_paragraph", "source_tag"},
		{"Bài 1", "你好。再见。", "Xin chào. Tạm biệt.", "hsk1"},
		{"", "谢谢。", "Cảm ơn.", "hsk1"}, // タイトルが空 → 失敗行
	}

	t.Run("正常系: overwriteは設問を先に削除してからユニットを削除する", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabRepository)
		mockUnitRepo := new(mocks.ReadingUnitRepository)
		mockQuestionRepo := new(mocks.ReadingQuestionRepository)
		mockImportLogRepo := new(mocks.ImportLogRepository)

		mockQuestionRepo.On("DeleteAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil).Once()
		mockUnitRepo.On("DeleteAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil).Once()
		mockUnitRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReadingUnit")).
			Run(func(args mock.Arguments) {
				unit := args.Get(2).(*model.ReadingUnit)
				assert.Equal(t, "Bài 1", unit.UnitTitle)
				assert.Equal(t, "hsk1", unit.SourceTag)
			}).Return(nil).Once()
		mockImportLogRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ImportLog")).
			Return(nil).Once()

		svc := NewImportService(db, mockVocabRepo, mockUnitRepo, mockQuestionRepo, mockImportLogRepo)

		log, err := svc.ImportReadingUnits(ctx, "units.xlsx", buildSheet(t, rows), model.ImportModeOverwrite)

		require.NoError(t, err)
		require.NotNil(t, log)
		assert.Equal(t, 2, log.Result.Total)
		assert.Equal(t, 1, log.Result.Success)
		assert.Equal(t, 1, log.Result.Failed)
		assert.Equal(t, model.ImportTypeReadingUnits, log.FileType)

		mockUnitRepo.AssertExpectations(t)
		mockQuestionRepo.AssertExpectations(t)
		mockImportLogRepo.AssertExpectations(t)
	})
}

// internal/service/import_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportService はスプレッドシート（xlsx）からの一括取り込みを提供します
type ImportService interface {
	ImportVocabulary(ctx context.Context, filename string, r io.Reader, mode model.ImportMode) (*model.ImportLog, error)
	ImportReadingUnits(ctx context.Context, filename string, r io.Reader, mode model.ImportMode) (*model.ImportLog, error)
	ListImportLogs(ctx context.Context, limit int) ([]*model.ImportLog, error)
}

type importService struct {
	db            *gorm.DB
	vocabRepo     repository.VocabRepository
	unitRepo      repository.ReadingUnitRepository
	questionRepo  repository.ReadingQuestionRepository
	importLogRepo repository.ImportLogRepository
}

func NewImportService(
	db *gorm.DB,
	vocabRepo repository.VocabRepository,
	unitRepo repository.ReadingUnitRepository,
	questionRepo repository.ReadingQuestionRepository,
	importLogRepo repository.ImportLogRepository,
) ImportService {
	return &importService{
		db:            db,
		vocabRepo:     vocabRepo,
		unitRepo:      unitRepo,
		questionRepo:  questionRepo,
		importLogRepo: importLogRepo,
	}
}

// 列ヘッダーのエイリアス。スプレッドシートの出どころによって表記が
// 揺れるため、論理フィールドごとに優先順のエイリアス列を持ち、
// シートの読み込み開始時に1回だけ解決します（行ごとには解決しない）。
var (
	vocabHeaderAliases = map[string][]string{
		"zh":         {"中文", "zh", "hanzi", "chinese"},
		"pinyin":     {"拼音", "pinyin"},
		"vi":         {"việt", "vi", "vietnamese", "nghĩa"},
		"audio_url":  {"audio", "audio_url", "âm thanh"},
		"source_tag": {"tag", "source_tag", "chủ đề", "出典"},
	}
	unitHeaderAliases = map[string][]string{
		"unit_title":   {"title", "unit_title", "tiêu đề", "タイトル"},
		"zh_paragraph": {"中文", "zh", "zh_paragraph", "đoạn văn trung"},
		"vi_paragraph": {"việt", "vi", "vi_paragraph", "đoạn văn việt"},
		"source_tag":   {"tag", "source_tag", "chủ đề", "出典"},
	}
)

// resolveHeaders はヘッダー行から論理フィールド名 -> 列番号の対応を作ります。
// エイリアスは前方のものを優先します。
func resolveHeaders(headerRow []string, aliases map[string][]string) map[string]int {
	normalized := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, ok := normalized[key]; !ok {
			normalized[key] = i
		}
	}

	columns := make(map[string]int)
	for field, names := range aliases {
		for _, name := range names {
			if idx, ok := normalized[strings.ToLower(name)]; ok {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

func cellAt(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ImportVocabulary は語彙シートを取り込みます。
// mode が overwrite の場合は既存の語彙を全削除してから取り込みます。
// 行単位のエラーは記録して続行し、最後に ImportLog として永続化します。
func (s *importService) ImportVocabulary(ctx context.Context, filename string, r io.Reader, mode model.ImportMode) (*model.ImportLog, error) {
	logger := middleware.GetLogger(ctx)

	rows, err := readSheetRows(r)
	if err != nil {
		logger.Error("Error reading vocabulary sheet", "error", err, "file", filename)
		return nil, model.NewAppError("INVALID_FILE", "Không thể đọc file Excel", "file", model.ErrInvalidInput)
	}
	if len(rows) < 2 {
		return nil, model.NewAppError("EMPTY_FILE", "File không có dữ liệu", "file", model.ErrInvalidInput)
	}

	columns := resolveHeaders(rows[0], vocabHeaderAliases)
	if _, ok := columns["zh"]; !ok {
		return nil, model.NewAppError("MISSING_COLUMN", "Thiếu cột tiếng Trung", "file", model.ErrInvalidInput)
	}

	result := model.ImportResult{Errors: model.StringArray{}}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if mode == model.ImportModeOverwrite {
			if err := s.vocabRepo.DeleteAll(ctx, tx); err != nil {
				return err
			}
		}

		for i, row := range rows[1:] {
			result.Total++
			zh := cellAt(row, columns, "zh")
			vi := cellAt(row, columns, "vi")
			if zh == "" || vi == "" {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("dòng %d: thiếu tiếng Trung hoặc tiếng Việt", i+2))
				continue
			}
			vocab := &model.Vocab{
				VocabID:   uuid.New(),
				Zh:        zh,
				Pinyin:    cellAt(row, columns, "pinyin"),
				Vi:        vi,
				AudioURL:  cellAt(row, columns, "audio_url"),
				SourceTag: cellAt(row, columns, "source_tag"),
			}
			if err := s.vocabRepo.Create(ctx, tx, vocab); err != nil {
				return err
			}
			result.Success++
		}
		return nil
	})
	if err != nil {
		logger.Error("Error importing vocabulary", "error", err, "file", filename)
		return nil, model.ErrInternalServer
	}

	return s.writeLog(ctx, filename, model.ImportTypeVocabulary, mode, result)
}

// ImportReadingUnits は読解ユニットシートを取り込みます
func (s *importService) ImportReadingUnits(ctx context.Context, filename string, r io.Reader, mode model.ImportMode) (*model.ImportLog, error) {
	logger := middleware.GetLogger(ctx)

	rows, err := readSheetRows(r)
	if err != nil {
		logger.Error("Error reading reading-units sheet", "error", err, "file", filename)
		return nil, model.NewAppError("INVALID_FILE", "Không thể đọc file Excel", "file", model.ErrInvalidInput)
	}
	if len(rows) < 2 {
		return nil, model.NewAppError("EMPTY_FILE", "File không có dữ liệu", "file", model.ErrInvalidInput)
	}

	columns := resolveHeaders(rows[0], unitHeaderAliases)
	if _, ok := columns["zh_paragraph"]; !ok {
		return nil, model.NewAppError("MISSING_COLUMN", "Thiếu cột đoạn văn tiếng Trung", "file", model.ErrInvalidInput)
	}

	result := model.ImportResult{Errors: model.StringArray{}}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if mode == model.ImportModeOverwrite {
			if err := s.questionRepo.DeleteAll(ctx, tx); err != nil {
				return err
			}
			if err := s.unitRepo.DeleteAll(ctx, tx); err != nil {
				return err
			}
		}

		for i, row := range rows[1:] {
			result.Total++
			title := cellAt(row, columns, "unit_title")
			zh := cellAt(row, columns, "zh_paragraph")
			vi := cellAt(row, columns, "vi_paragraph")
			if title == "" || zh == "" || vi == "" {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("dòng %d: thiếu tiêu đề hoặc đoạn văn", i+2))
				continue
			}
			unit := &model.ReadingUnit{
				UnitID:      uuid.New(),
				UnitTitle:   title,
				ZhParagraph: zh,
				ViParagraph: vi,
				SourceTag:   cellAt(row, columns, "source_tag"),
			}
			if err := s.unitRepo.Create(ctx, tx, unit); err != nil {
				return err
			}
			result.Success++
		}
		return nil
	})
	if err != nil {
		logger.Error("Error importing reading units", "error", err, "file", filename)
		return nil, model.ErrInternalServer
	}

	return s.writeLog(ctx, filename, model.ImportTypeReadingUnits, mode, result)
}

func (s *importService) ListImportLogs(ctx context.Context, limit int) ([]*model.ImportLog, error) {
	logger := middleware.GetLogger(ctx)

	logs, err := s.importLogRepo.FindRecent(ctx, s.db, limit)
	if err != nil {
		logger.Error("Error listing import logs", "error", err)
		return nil, model.ErrInternalServer
	}
	return logs, nil
}

func (s *importService) writeLog(ctx context.Context, filename string, fileType model.ImportFileType, mode model.ImportMode, result model.ImportResult) (*model.ImportLog, error) {
	logger := middleware.GetLogger(ctx)

	log := &model.ImportLog{
		ImportID: uuid.New(),
		File:     filename,
		FileType: fileType,
		Mode:     mode,
		Result:   result,
	}
	if err := s.importLogRepo.Create(ctx, s.db, log); err != nil {
		logger.Error("Error writing import log", "error", err, "file", filename)
		return nil, model.ErrInternalServer
	}
	return log, nil
}

// readSheetRows は最初のシートの全行を読み込みます
func readSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in workbook")
	}
	return f.GetRows(sheets[0])
}

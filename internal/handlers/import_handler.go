package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/service"
	"go_hanviet_learn/internal/webutil"
)

// アップロードを受け付けるスプレッドシートの最大サイズ
const maxImportFileSize = 10 << 20 // 10MiB

type ImportHandler struct {
	service service.ImportService
}

func NewImportHandler(s service.ImportService) *ImportHandler {
	return &ImportHandler{service: s}
}

// openUploadedFile は multipart フォームから xlsx ファイルと取り込みモードを取り出します
func openUploadedFile(r *http.Request, logger *slog.Logger) (multipart.File, *multipart.FileHeader, model.ImportMode, error) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		return nil, nil, "", model.NewAppError("INVALID_REQUEST_BODY", "Không thể đọc tệp tải lên.", "file", model.ErrInvalidInput)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Missing file field in multipart form", "error", err)
		return nil, nil, "", model.NewAppError("INVALID_REQUEST_BODY", "Vui lòng đính kèm tệp cần nhập.", "file", model.ErrInvalidInput)
	}

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		file.Close()
		logger.Warn("Unsupported file extension", "filename", header.Filename)
		return nil, nil, "", model.NewAppError("UNSUPPORTED_FILE_TYPE", "Chỉ hỗ trợ tệp định dạng .xlsx.", "file", model.ErrInvalidInput)
	}

	mode := model.ImportMode(r.FormValue("mode"))
	switch mode {
	case model.ImportModeOverwrite, model.ImportModeAppend:
	case "":
		mode = model.ImportModeAppend
	default:
		file.Close()
		logger.Warn("Invalid import mode", "mode", mode)
		return nil, nil, "", model.NewAppError("INVALID_MODE", "Chế độ nhập không hợp lệ. Chỉ chấp nhận overwrite hoặc append.", "mode", model.ErrInvalidInput)
	}

	return file, header, mode, nil
}

// ImportVocabulary は xlsx から単語を一括登録します
func (h *ImportHandler) ImportVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	file, header, mode, err := openUploadedFile(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	defer file.Close()
	logger = logger.With("filename", header.Filename, "mode", string(mode))

	logger.Info("Starting vocabulary import")
	log, err := h.service.ImportVocabulary(r.Context(), header.Filename, file, mode)
	if err != nil {
		logger.Error("Vocabulary import failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary import finished",
		"total", log.Result.Total, "success", log.Result.Success, "failed", log.Result.Failed)
	webutil.RespondWithJSON(w, http.StatusOK, log, logger)
}

// ImportReadingUnits は xlsx から読解ユニットを一括登録します
func (h *ImportHandler) ImportReadingUnits(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	file, header, mode, err := openUploadedFile(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	defer file.Close()
	logger = logger.With("filename", header.Filename, "mode", string(mode))

	logger.Info("Starting reading unit import")
	log, err := h.service.ImportReadingUnits(r.Context(), header.Filename, file, mode)
	if err != nil {
		logger.Error("Reading unit import failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reading unit import finished",
		"total", log.Result.Total, "success", log.Result.Success, "failed", log.Result.Failed)
	webutil.RespondWithJSON(w, http.StatusOK, log, logger)
}

// GetImportLogs は取り込み履歴を新しい順に返します
func (h *ImportHandler) GetImportLogs(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	logs, err := h.service.ListImportLogs(r.Context(), parseLimit(r))
	if err != nil {
		logger.Error("Error listing import logs in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if logs == nil {
		logs = []*model.ImportLog{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, logs, logger)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/service"
	"go_hanviet_learn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type VocabHandler struct {
	service service.VocabService
}

func NewVocabHandler(s service.VocabService) *VocabHandler {
	return &VocabHandler{service: s}
}

// parseSourceTags は ?source_tag=hsk1,hsk2 形式のクエリをタグのスライスに分解します
func parseSourceTags(r *http.Request) []string {
	raw := r.URL.Query().Get("source_tag")
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseLimit は ?limit= クエリを整数に変換します（不正値・未指定は0）
func parseLimit(r *http.Request) int {
	return parsePositiveInt(r, "limit")
}

// parsePage は ?page= クエリを整数に変換します（不正値・未指定は0）
func parsePage(r *http.Request) int {
	return parsePositiveInt(r, "page")
}

func parsePositiveInt(r *http.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PostVocab は新しい単語リソースを作成するためのハンドラ
func (h *VocabHandler) PostVocab(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostVocabRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Nội dung yêu cầu không đúng định dạng.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	vocab, err := h.service.CreateVocab(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating vocab in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocab created successfully", "vocab_id", vocab.VocabID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, vocab, logger)
}

// GetVocabs は単語リソースの一覧を取得するためのハンドラ
func (h *VocabHandler) GetVocabs(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	query := model.VocabListQuery{
		SourceTags: parseSourceTags(r),
		Search:     strings.TrimSpace(r.URL.Query().Get("search")),
		Page:       parsePage(r),
		Limit:      parseLimit(r),
	}
	vocabs, err := h.service.ListVocabs(r.Context(), query)
	if err != nil {
		logger.Error("Error listing vocabs in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if vocabs == nil {
		vocabs = []*model.Vocab{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

// GetVocab は特定の単語リソースを取得するためのハンドラ
func (h *VocabHandler) GetVocab(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	vocabIDStr := chi.URLParam(r, "vocab_id")
	vocabID, err := uuid.Parse(vocabIDStr)
	if err != nil {
		logger.Warn("Invalid vocab ID format in URL", "vocab_id_str", vocabIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Mã từ vựng không đúng định dạng.", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("vocab_id", vocabID.String())

	vocab, err := h.service.GetVocab(r.Context(), vocabID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Vocab not found in service", "error", err)
		} else {
			logger.Error("Error getting vocab from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// PatchVocab は特定の単語リソースの一部を更新するためのハンドラ
func (h *VocabHandler) PatchVocab(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	vocabIDStr := chi.URLParam(r, "vocab_id")
	vocabID, err := uuid.Parse(vocabIDStr)
	if err != nil {
		logger.Warn("Invalid vocab ID format in URL for PatchVocab", "vocab_id_str", vocabIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Mã từ vựng không đúng định dạng.", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("vocab_id", vocabID.String())

	var req model.PatchVocabRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchVocab request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Nội dung yêu cầu không đúng định dạng.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Zh == nil && req.Pinyin == nil && req.Vi == nil && req.AudioURL == nil && req.SourceTag == nil {
		logger.Warn("PatchVocab called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "Không có trường nào được chỉ định để cập nhật.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	vocab, err := h.service.UpdateVocab(r.Context(), vocabID, &req)
	if err != nil {
		logger.Error("Error patching vocab in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocab patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// DeleteVocab は特定の単語リソースを削除するためのハンドラ
func (h *VocabHandler) DeleteVocab(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	vocabIDStr := chi.URLParam(r, "vocab_id")
	vocabID, err := uuid.Parse(vocabIDStr)
	if err != nil {
		logger.Warn("Invalid vocab ID format in URL for DeleteVocab", "vocab_id_str", vocabIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Mã từ vựng không đúng định dạng.", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("vocab_id", vocabID.String())

	if err := h.service.DeleteVocab(r.Context(), vocabID); err != nil {
		logger.Error("Error deleting vocab in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocab deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// GetTagCounts は source_tag ごとの単語数の集計を返します
func (h *VocabHandler) GetTagCounts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	counts, err := h.service.GetTagCounts(r.Context())
	if err != nil {
		logger.Error("Error counting vocab tags in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if counts == nil {
		counts = []*model.TagCount{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts, logger)
}

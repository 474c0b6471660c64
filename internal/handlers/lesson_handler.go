package handlers

import (
	"errors"
	"net/http"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/service"
	"go_hanviet_learn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type LessonHandler struct {
	service service.LessonService
}

func NewLessonHandler(s service.LessonService) *LessonHandler {
	return &LessonHandler{service: s}
}

// PostLesson は新しいレッスンを作成するためのハンドラ
func (h *LessonHandler) PostLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostLessonRequest
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

	lesson, err := h.service.CreateLesson(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating lesson in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson created successfully", "lesson_id", lesson.LessonID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, lesson, logger)
}

// GetLessons はレッスン一覧を文の件数つきで返します
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	lessons, err := h.service.ListLessons(r.Context(), parseSourceTags(r))
	if err != nil {
		logger.Error("Error listing lessons in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if lessons == nil {
		lessons = []*model.LessonWithCount{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, lessons, logger)
}

// GetLesson は特定のレッスンを取得するためのハンドラ
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	lessonIDStr := chi.URLParam(r, "lesson_id")
	lessonID, err := uuid.Parse(lessonIDStr)
	if err != nil {
		logger.Warn("Invalid lesson ID format in URL", "lesson_id_str", lessonIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Mã bài học không đúng định dạng.", "lesson_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("lesson_id", lessonID.String())

	lesson, err := h.service.GetLesson(r.Context(), lessonID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Lesson not found in service", "error", err)
		} else {
			logger.Error("Error getting lesson from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

// PostSentence はレッスンに紐づく例文を作成するためのハンドラ
func (h *LessonHandler) PostSentence(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	lessonIDStr := chi.URLParam(r, "lesson_id")
	lessonID, err := uuid.Parse(lessonIDStr)
	if err != nil {
		logger.Warn("Invalid lesson ID format in URL for PostSentence", "lesson_id_str", lessonIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Mã bài học không đúng định dạng.", "lesson_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("lesson_id", lessonID.String())

	var req model.PostSentenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PostSentence request body", "error", err)
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

	sentence, err := h.service.CreateSentence(r.Context(), lessonID, &req)
	if err != nil {
		logger.Error("Error creating sentence in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sentence created successfully", "sentence_id", sentence.SentenceID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, sentence, logger)
}

// GetSentences は例文一覧を返します。登録済みの例文がなければ
// 読解ユニットの段落から自動生成した文にフォールバックします。
func (h *LessonHandler) GetSentences(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var lessonID *uuid.UUID
	if raw := r.URL.Query().Get("lesson_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Invalid lesson ID format in query", "lesson_id_str", raw, "error", err)
			appErr := model.NewAppError("INVALID_URL_PARAM", "Mã bài học không đúng định dạng.", "lesson_id", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		lessonID = &parsed
	}

	resp, err := h.service.ListSentences(r.Context(), lessonID, parseLimit(r))
	if err != nil {
		logger.Error("Error listing sentences in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetTagCounts は source_tag ごとのレッスン数の集計を返します
func (h *LessonHandler) GetTagCounts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	counts, err := h.service.GetTagCounts(r.Context())
	if err != nil {
		logger.Error("Error counting lesson tags in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if counts == nil {
		counts = []*model.TagCount{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts, logger)
}

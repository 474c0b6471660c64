package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/service"
	"go_hanviet_learn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReadingHandler struct {
	service service.ReadingService
}

func NewReadingHandler(s service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: s}
}

func parseUnitID(r *http.Request, logger *slog.Logger) (uuid.UUID, error) {
	unitIDStr := chi.URLParam(r, "unit_id")
	unitID, err := uuid.Parse(unitIDStr)
	if err != nil {
		logger.Warn("Invalid unit ID format in URL", "unit_id_str", unitIDStr, "error", err)
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "Mã bài đọc không đúng định dạng.", "unit_id", model.ErrInvalidInput)
	}
	return unitID, nil
}

// PostUnit は読解ユニットを作成します。段落は文単位に分割されて保存されます
func (h *ReadingHandler) PostUnit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostReadingUnitRequest
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

	unit, err := h.service.CreateUnit(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating reading unit in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reading unit created successfully", "unit_id", unit.UnitID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, unit, logger)
}

// GetUnits は読解ユニットの一覧を返します
func (h *ReadingHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	units, err := h.service.ListUnits(r.Context(), parseSourceTags(r), parseLimit(r))
	if err != nil {
		logger.Error("Error listing reading units in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if units == nil {
		units = []*model.ReadingUnit{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, units, logger)
}

// GetUnit は特定の読解ユニットを取得します
func (h *ReadingHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	unitID, err := parseUnitID(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("unit_id", unitID.String())

	unit, err := h.service.GetUnit(r.Context(), unitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Reading unit not found in service", "error", err)
		} else {
			logger.Error("Error getting reading unit from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, unit, logger)
}

// DeleteUnit は読解ユニットを設問ごと削除します
func (h *ReadingHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	unitID, err := parseUnitID(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("unit_id", unitID.String())

	if err := h.service.DeleteUnit(r.Context(), unitID); err != nil {
		logger.Error("Error deleting reading unit in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reading unit deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// PostQuestion は読解ユニットに設問を追加します
func (h *ReadingHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	unitID, err := parseUnitID(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("unit_id", unitID.String())

	var req model.PostReadingQuestionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PostQuestion request body", "error", err)
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

	question, err := h.service.CreateQuestion(r.Context(), unitID, &req)
	if err != nil {
		logger.Error("Error creating reading question in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reading question created successfully", "question_id", question.QuestionID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}

// GetQuestions は読解ユニットの設問一覧を返します
func (h *ReadingHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	unitID, err := parseUnitID(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("unit_id", unitID.String())

	questions, err := h.service.ListQuestions(r.Context(), unitID)
	if err != nil {
		logger.Error("Error listing reading questions in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.ReadingQuestion{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// GradeUnit は読解ユニットの設問に対する回答をまとめて採点します
func (h *ReadingHandler) GradeUnit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	unitID, err := parseUnitID(r, logger)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("unit_id", unitID.String())

	var req model.GradeUnitRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode GradeUnit request body", "error", err)
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

	result, err := h.service.GradeUnit(r.Context(), unitID, &req)
	if err != nil {
		logger.Error("Error grading reading unit in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reading unit graded", "total", result.Total, "correct", result.Correct)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetTagCounts は source_tag ごとの読解ユニット数の集計を返します
func (h *ReadingHandler) GetTagCounts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	counts, err := h.service.GetTagCounts(r.Context())
	if err != nil {
		logger.Error("Error counting reading unit tags in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if counts == nil {
		counts = []*model.TagCount{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts, logger)
}

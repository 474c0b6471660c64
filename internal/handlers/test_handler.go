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

type TestHandler struct {
	service service.TestService
}

func NewTestHandler(s service.TestService) *TestHandler {
	return &TestHandler{service: s}
}

// PostTest は語彙・例文・読解を混合したテストを組み立て、
// 回答用のセッションとともに返します
func (h *TestHandler) PostTest(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "Không tìm thấy thông tin xác thực.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	// ボディ省略時は設定値のデフォルトでテストを組み立てる
	req := &model.AssembleTestRequest{}
	if r.ContentLength != 0 {
		if err := webutil.DecodeJSONBody(r, req); err != nil {
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
	}

	resp, err := h.service.AssembleTest(r.Context(), userID, req)
	if err != nil {
		logger.Error("Error assembling test in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Test assembled successfully", "session_id", resp.SessionID, "items", len(resp.Items))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// SubmitTest はテストの回答一式を採点し、結果をセッションに記録します
func (h *TestHandler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "Không tìm thấy thông tin xác thực.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", "session_id_str", sessionIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Mã phiên học không đúng định dạng.", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("session_id", sessionID.String())

	var req model.SubmitTestRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode SubmitTest request body", "error", err)
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

	result, err := h.service.SubmitTest(r.Context(), userID, sessionID, &req)
	if err != nil {
		logger.Error("Error submitting test in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Test submitted successfully", "score", result.Score, "total", result.Total)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

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

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(s service.SessionService) *SessionHandler {
	return &SessionHandler{service: s}
}

func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	logger := middleware.GetLogger(r.Context())
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "Không tìm thấy thông tin xác thực.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return userID, true
}

// PostSession は練習モードの学習セッションを開始します
func (h *SessionHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	logger = logger.With("user_id", userID.String())

	var req model.PostSessionRequest
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

	session, err := h.service.CreateSession(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating session in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session created successfully", "session_id", session.SessionID.String(), "mode", session.Mode)
	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// PostAnswer は進行中のセッションに回答を1件記録します
func (h *SessionHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	logger = logger.With("user_id", userID.String())

	var req model.PostAnswerRequest
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

	answer, err := h.service.RecordAnswer(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error recording answer in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, answer, logger)
}

// CompleteSession はセッションを完了にし、最終スコアを確定します
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
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

	session, err := h.service.CompleteSession(r.Context(), userID, sessionID)
	if err != nil {
		logger.Error("Error completing session in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session completed", "total", session.Summary.Total, "correct", session.Summary.Correct)
	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// GetSession は特定のセッションを取得します（本人のもののみ）
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
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

	session, err := h.service.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Session not found in service", "error", err)
		} else {
			logger.Error("Error getting session from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// GetSessions は自分のセッション履歴を新しい順に返します
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	logger = logger.With("user_id", userID.String())

	sessions, err := h.service.ListMySessions(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing sessions in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if sessions == nil {
		sessions = []*model.Session{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, sessions, logger)
}

// GetProgress は学習進捗の統計を返します
func (h *SessionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	logger = logger.With("user_id", userID.String())

	progress, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting progress in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

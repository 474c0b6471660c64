// internal/handlers/vocab_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_hanviet_learn/internal/handlers"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/service/mocks"
)

func TestVocabHandler_PostVocab(t *testing.T) {
	// --- セットアップ ---
	mockVocabService := mocks.NewMockVocabService(t)
	vocabHandler := handlers.NewVocabHandler(mockVocabService)
	router := chi.NewRouter()
	router.Post("/api/v1/vocabs", vocabHandler.PostVocab)
	// ------------------

	validReqBody := model.PostVocabRequest{
		Zh:        "你好",
		Pinyin:    "nǐ hǎo",
		Vi:        "xin chào",
		SourceTag: "hsk1",
	}
	expectedVocab := &model.Vocab{
		VocabID:   uuid.New(),
		Zh:        validReqBody.Zh,
		Pinyin:    validReqBody.Pinyin,
		Vi:        validReqBody.Vi,
		SourceTag: validReqBody.SourceTag,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectError    bool
	}{
		{
			name: "正常系: 有効なリクエスト",
			body: validReqBody,
			setupMock: func() {
				mockVocabService.On("CreateVocab", mock.AnythingOfType("*context.valueCtx"), &validReqBody).
					Return(expectedVocab, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectError:    false,
		},
		{
			name:           "異常系: 必須フィールド(zh)が欠落",
			body:           model.PostVocabRequest{Pinyin: "chá", Vi: "trà"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "異常系: 不正なJSONボディ",
			body:           `{"zh": "茶",`,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name: "異常系: Serviceが重複エラーを返す",
			body: validReqBody,
			setupMock: func() {
				mockVocabService.On("CreateVocab", mock.AnythingOfType("*context.valueCtx"), &validReqBody).
					Return(nil, model.ErrConflict).Once()
			},
			expectedStatus: http.StatusConflict,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/vocabs", tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if !tc.expectError {
				var respVocab model.Vocab
				err := json.Unmarshal(rr.Body.Bytes(), &respVocab)
				assert.NoError(t, err)
				assert.Equal(t, expectedVocab.Zh, respVocab.Zh)
				assert.Equal(t, expectedVocab.Vi, respVocab.Vi)
				assert.NotEqual(t, uuid.Nil, respVocab.VocabID)
			} else {
				var errResp model.APIErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &errResp)
				assert.NoError(t, err, "Failed to unmarshal error response body")
				assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
			}

			mockVocabService.AssertExpectations(t)
		})
	}
}

func TestVocabHandler_GetVocabs(t *testing.T) {
	mockVocabService := mocks.NewMockVocabService(t)
	vocabHandler := handlers.NewVocabHandler(mockVocabService)
	router := chi.NewRouter()
	router.Get("/api/v1/vocabs", vocabHandler.GetVocabs)

	vocab1 := &model.Vocab{VocabID: uuid.New(), Zh: "你好", Pinyin: "nǐ hǎo", Vi: "xin chào", SourceTag: "hsk1"}
	vocab2 := &model.Vocab{VocabID: uuid.New(), Zh: "茶", Pinyin: "chá", Vi: "trà", SourceTag: "hsk1"}

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:   "正常系: タグと件数上限を指定して一覧取得",
			target: "/api/v1/vocabs?source_tag=hsk1,hsk2&limit=10",
			setupMock: func() {
				mockVocabService.On("ListVocabs", mock.AnythingOfType("*context.valueCtx"),
					model.VocabListQuery{SourceTags: []string{"hsk1", "hsk2"}, Limit: 10}).
					Return([]*model.Vocab{vocab1, vocab2}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "正常系: ページ番号と検索語を指定して一覧取得",
			target: "/api/v1/vocabs?page=2&limit=20&search=ch%C3%A0o",
			setupMock: func() {
				mockVocabService.On("ListVocabs", mock.AnythingOfType("*context.valueCtx"),
					model.VocabListQuery{Search: "chào", Page: 2, Limit: 20}).
					Return([]*model.Vocab{vocab1}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:   "正常系: 結果が空でも空配列を返す",
			target: "/api/v1/vocabs",
			setupMock: func() {
				mockVocabService.On("ListVocabs", mock.AnythingOfType("*context.valueCtx"), model.VocabListQuery{}).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:   "正常系: 不正なlimitとpageは0として扱う",
			target: "/api/v1/vocabs?limit=abc&page=-1",
			setupMock: func() {
				mockVocabService.On("ListVocabs", mock.AnythingOfType("*context.valueCtx"), model.VocabListQuery{}).
					Return([]*model.Vocab{vocab1}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:   "異常系: Serviceがエラーを返す",
			target: "/api/v1/vocabs",
			setupMock: func() {
				mockVocabService.On("ListVocabs", mock.AnythingOfType("*context.valueCtx"), model.VocabListQuery{}).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCount:  -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.target, nil, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedCount >= 0 {
				var respVocabs []*model.Vocab
				err := json.Unmarshal(rr.Body.Bytes(), &respVocabs)
				assert.NoError(t, err)
				assert.Len(t, respVocabs, tc.expectedCount)
				// nil ではなく空配列としてシリアライズされること
				assert.NotNil(t, respVocabs)
			}

			mockVocabService.AssertExpectations(t)
		})
	}
}

func TestVocabHandler_GetVocab(t *testing.T) {
	mockVocabService := mocks.NewMockVocabService(t)
	vocabHandler := handlers.NewVocabHandler(mockVocabService)
	router := chi.NewRouter()
	router.Get("/api/v1/vocabs/{vocab_id}", vocabHandler.GetVocab)

	vocabID := uuid.New()
	expectedVocab := &model.Vocab{VocabID: vocabID, Zh: "水", Pinyin: "shuǐ", Vi: "nước"}

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "正常系: 存在する単語を取得",
			target: fmt.Sprintf("/api/v1/vocabs/%s", vocabID),
			setupMock: func() {
				mockVocabService.On("GetVocab", mock.AnythingOfType("*context.valueCtx"), vocabID).
					Return(expectedVocab, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: UUID形式でないID",
			target:         "/api/v1/vocabs/not-a-uuid",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "異常系: 存在しない単語",
			target: fmt.Sprintf("/api/v1/vocabs/%s", vocabID),
			setupMock: func() {
				mockVocabService.On("GetVocab", mock.AnythingOfType("*context.valueCtx"), vocabID).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.target, nil, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var respVocab model.Vocab
				err := json.Unmarshal(rr.Body.Bytes(), &respVocab)
				assert.NoError(t, err)
				assert.Equal(t, expectedVocab.VocabID, respVocab.VocabID)
			}

			mockVocabService.AssertExpectations(t)
		})
	}
}

func TestVocabHandler_PatchVocab(t *testing.T) {
	mockVocabService := mocks.NewMockVocabService(t)
	vocabHandler := handlers.NewVocabHandler(mockVocabService)
	router := chi.NewRouter()
	router.Patch("/api/v1/vocabs/{vocab_id}", vocabHandler.PatchVocab)

	vocabID := uuid.New()
	newVi := "trà xanh"
	validReqBody := model.PatchVocabRequest{Vi: &newVi}
	updatedVocab := &model.Vocab{VocabID: vocabID, Zh: "茶", Pinyin: "chá", Vi: newVi}

	tests := []struct {
		name           string
		target         string
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "正常系: 一部フィールドの更新",
			target: fmt.Sprintf("/api/v1/vocabs/%s", vocabID),
			body:   validReqBody,
			setupMock: func() {
				mockVocabService.On("UpdateVocab", mock.AnythingOfType("*context.valueCtx"), vocabID, &validReqBody).
					Return(updatedVocab, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 更新フィールドが1つもない",
			target:         fmt.Sprintf("/api/v1/vocabs/%s", vocabID),
			body:           model.PatchVocabRequest{},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "異常系: 存在しない単語の更新",
			target: fmt.Sprintf("/api/v1/vocabs/%s", vocabID),
			body:   validReqBody,
			setupMock: func() {
				mockVocabService.On("UpdateVocab", mock.AnythingOfType("*context.valueCtx"), vocabID, &validReqBody).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "PATCH", tc.target, tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			mockVocabService.AssertExpectations(t)
		})
	}
}

func TestVocabHandler_DeleteVocab(t *testing.T) {
	mockVocabService := mocks.NewMockVocabService(t)
	vocabHandler := handlers.NewVocabHandler(mockVocabService)
	router := chi.NewRouter()
	router.Delete("/api/v1/vocabs/{vocab_id}", vocabHandler.DeleteVocab)

	vocabID := uuid.New()

	t.Run("正常系: 削除成功で204を返す", func(t *testing.T) {
		mockVocabService.On("DeleteVocab", mock.AnythingOfType("*context.valueCtx"), vocabID).
			Return(nil).Once()

		req := createRequest(t, "DELETE", fmt.Sprintf("/api/v1/vocabs/%s", vocabID), nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		mockVocabService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない単語の削除", func(t *testing.T) {
		mockVocabService.On("DeleteVocab", mock.AnythingOfType("*context.valueCtx"), vocabID).
			Return(model.ErrNotFound).Once()

		req := createRequest(t, "DELETE", fmt.Sprintf("/api/v1/vocabs/%s", vocabID), nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockVocabService.AssertExpectations(t)
	})
}

// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createRequest はテスト用のHTTPリクエストを組み立てます。
// body が string の場合はそのまま（不正JSONのテスト用）、それ以外はJSONエンコードします。
// userID が nil でなければ X-User-ID ヘッダーに設定します（DevUserContextMiddleware 用）。
func createRequest(t *testing.T, method, target string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBodyReader io.Reader
	if body != nil {
		if strPayload, ok := body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req := httptest.NewRequest(method, target, reqBodyReader)
	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

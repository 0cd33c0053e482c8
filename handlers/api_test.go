// api_test.go - shared test fixtures for the handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"karigar-backend/store"
	"karigar-backend/utils"
)

// fakeUploader stands in for object storage in tests.
type fakeUploader struct{}

func (fakeUploader) Upload(ctx context.Context, folder, payload string) (string, error) {
	return "http://images.local/" + folder + "/test.png", nil
}

func newTestRouter() (*API, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	api := New(store.NewMemoryStore(), fakeUploader{}, utils.NewTokenService("test-secret"))
	r := gin.New()
	api.RegisterRoutes(r)
	return api, r
}

// doJSON sends a JSON request and returns the recorded response. An empty
// token leaves the auth-token header off.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("auth-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signup registers a user and returns the issued token.
func signup(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func addProduct(t *testing.T, r *gin.Engine, name string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/addproduct", gin.H{
		"name":        name,
		"image":       "http://images.local/product/" + name + ".png",
		"category":    "tools",
		"new_price":   10.0,
		"description": "a " + name,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

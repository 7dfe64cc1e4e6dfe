package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store/kv"
)

// setupTestRouter builds a router over a fresh memory-backed store with
// the default folders seeded. The AI services are left nil, so their
// endpoints answer 503 in tests.
func setupTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(kv.NewMemory())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	router := gin.New()
	SetupAPI(router, s, service.NewAuthService(s, "test-secret"), nil, nil)
	return router, s
}

// createTestUserAndToken registers a user through the API and returns
// the issued token.
func createTestUserAndToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "cook@example.com",
		"username": "cook",
		"password": "supersecret",
	})
	if w.Code != 201 {
		t.Fatalf("failed to register test user: %d %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	token, ok := response["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register response missing token: %s", w.Body.String())
	}
	return token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		req.Body = io.NopCloser(bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

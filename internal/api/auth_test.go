package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	router, s := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "new@example.com",
		"username": "newcook",
		"password": "supersecret",
	})
	assert.Equal(t, 201, w.Code)

	response := decodeBody(t, w)
	assert.NotEmpty(t, response["token"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "newcook", user["username"])
	assert.NotContains(t, user, "password_hash", "hash never leaves the server")

	session := s.Session()
	assert.True(t, session.IsAuthenticated)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	// password too short
	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "new@example.com",
		"username": "newcook",
		"password": "short",
	})
	assert.Equal(t, 400, w.Code)

	// not an email
	w = doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "not-an-email",
		"username": "newcook",
		"password": "supersecret",
	})
	assert.Equal(t, 400, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"email":    "dup@example.com",
		"username": "first",
		"password": "supersecret",
	}
	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", body)
	require.Equal(t, 201, w.Code)

	w = doJSON(t, router, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, 409, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "cook@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = doJSON(t, router, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "cook@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, 401, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	router, s := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/auth/logout", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.False(t, s.Session().IsAuthenticated)

	w = doJSON(t, router, "POST", "/api/v1/auth/logout", "", nil)
	assert.Equal(t, 401, w.Code)
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(email string) map[string]string {
	return map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      email,
		"password":   "enginepass",
	}
}

type authBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

func TestRegistrationSuccess(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", registerBody("ada@example.com"))

	require.Equal(t, http.StatusCreated, w.Code)

	var body authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully!", body.Message)
	assert.NotEmpty(t, body.Token)
	assert.NotEmpty(t, body.User.ID)
	assert.Equal(t, "ada@example.com", body.User.Email)

	// The response exposes the stored record as-is: the password field
	// holds the bcrypt hash, never the plain text.
	assert.NotEqual(t, "enginepass", body.User.Password)
	assert.True(t, strings.HasPrefix(body.User.Password, "$2a$"))
}

func TestRegistrationDuplicateEmail(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", registerBody("ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/register", "", registerBody("ada@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email already exists!"}`, w.Body.String())
}

func TestRegistrationInvalidPayload(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{
		"first_name": "Ada",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request"}`, w.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	r := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/register", "", registerBody("ada@example.com"))

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "enginepass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User Logged In!", body.Message)
	require.NotEmpty(t, body.Token)

	// The returned token restores the session.
	w = doJSON(t, r, http.MethodGet, "/api/user", body.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var me struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "ada@example.com", me.User.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email not found!"}`, w.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/register", "", registerBody("ada@example.com"))

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid Credentials!"}`, w.Body.String())
}

func TestGetUserRequiresToken(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

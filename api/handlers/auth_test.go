package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginFlow(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/auth/register", map[string]string{
		"username":   "leo",
		"password":   "secret-password",
		"first_name": "Лев",
		"last_name":  "Толстой",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Повторная регистрация запрещена
	dup := postJSON(r, "/auth/register", map[string]string{
		"username": "leo",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusBadRequest, dup.Code)

	login := postJSON(r, "/auth/login", map[string]string{
		"username": "leo",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	// Полученный токен открывает изменяющие ручки
	created := postForm(r, loginResp.Token, "/create", url.Values{"text": {"Первый пост"}})
	require.Equal(t, http.StatusFound, created.Code)
	assert.Equal(t, "/profile/leo", created.Header().Get("Location"))

	// После логаута токен не работает
	logout := postJSON(r, "/auth/logout", map[string]string{"token": loginResp.Token})
	require.Equal(t, http.StatusOK, logout.Code)

	denied := postForm(r, loginResp.Token, "/create", url.Values{"text": {"Второй пост"}})
	require.Equal(t, http.StatusFound, denied.Code)
	assert.Equal(t, "/auth/login", denied.Header().Get("Location"))
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/auth/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

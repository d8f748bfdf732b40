package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"yatube/api/routes"
	"yatube/db"
	"yatube/models"
	"yatube/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter поднимает роутер приложения поверх SQLite в памяти
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	db.ORM = database

	// Кеш страниц глобальный, перед тестом сбрасываем
	require.NoError(t, services.GlobalPageCache.Clear(context.Background()))

	r := gin.New()
	routes.PublicApi(r)
	return r
}

// createTestUser создает пользователя и токен для авторизованных запросов
func createTestUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user := models.User{
		Username:  username,
		FirstName: "Тест",
		LastName:  "Тестов",
		Password:  "testpassword",
	}
	require.NoError(t, db.ORM.Create(&user).Error)

	token := fmt.Sprintf("test_token_%d", user.ID)
	require.NoError(t, db.ORM.Create(&models.UserTokens{UserID: user.ID, Token: token}).Error)

	return &user, token
}

func createTestGroup(t *testing.T, slug string) *models.Group {
	t.Helper()

	group := models.Group{
		Title:       "Тестовая группа",
		Slug:        slug,
		Description: "Тестовое описание",
	}
	require.NoError(t, db.ORM.Create(&group).Error)
	return &group
}

// postForm отправляет form-urlencoded запрос от имени пользователя с токеном
func postForm(r *gin.Engine, token, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func getPage(r *gin.Engine, token, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

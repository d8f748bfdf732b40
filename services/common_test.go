package services

import (
	"testing"

	"yatube/db"
	"yatube/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB инициализирует тестовую базу данных SQLite в памяти
func setupTestDB(t *testing.T) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	db.ORM = database
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:  username,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Password:  "testpassword",
	}
	require.NoError(t, db.ORM.Create(&user).Error)
	return &user
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

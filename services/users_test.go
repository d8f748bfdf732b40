package services

import (
	"context"
	"testing"

	"yatube/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, username, password string) *int64 {
	t.Helper()

	handler := UserHandler{
		Username: &username,
		Password: &password,
		DbModel: &models.User{
			Username: username,
			Password: password,
		},
	}
	userID, err := handler.Register()
	require.NoError(t, err)
	require.NotNil(t, userID)
	return userID
}

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)

	username := "leo"
	password := "secret-password"

	userID := registerUser(t, username, password)

	// Повторная регистрация с тем же именем запрещена
	again := UserHandler{
		Username: &username,
		Password: &password,
		DbModel:  &models.User{Username: username, Password: password},
	}
	_, err := again.Register()
	assert.Error(t, err)

	token, err := (&UserHandler{Username: &username, Password: &password}).Login()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, err := GetUserIDByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, *userID, gotID)

	require.NoError(t, (&UserHandler{Token: &token}).Logout())
	_, err = GetUserIDByToken(context.Background(), token)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)

	username := "leo"
	password := "secret-password"
	wrong := "wrong-password"
	registerUser(t, username, password)

	_, err := (&UserHandler{Username: &username, Password: &wrong}).Login()
	assert.EqualError(t, err, "invalid password")

	missing := "nobody"
	_, err = (&UserHandler{Username: &missing, Password: &password}).Login()
	assert.EqualError(t, err, "invalid username")
}

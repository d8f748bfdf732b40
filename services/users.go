package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"yatube/db"
	"yatube/models"

	"golang.org/x/crypto/argon2"
	"gorm.io/gorm"
)

type UserHandler struct {
	Username *string
	Password *string
	Token    *string

	DbModel *models.User
}

func hashPassword(password string, salt []byte) string {
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(hash)
}

func (h *UserHandler) Register() (userId *int64, err error) {
	if h.DbModel == nil || h.DbModel.Password == "" {
		return nil, errors.New("password is empty")
	}

	// Проверяем, существует ли пользователь с таким именем
	var alreadyExists int64
	err = db.ORM.Model(&models.User{}).Where("username = ?", *h.Username).Count(&alreadyExists).Error
	if err != nil {
		return nil, err
	}
	if alreadyExists > 0 {
		return nil, errors.New("user already exists")
	}

	salt := make([]byte, 16)
	if _, err = rand.Read(salt); err != nil {
		return nil, err
	}
	h.DbModel.Password = hashPassword(h.DbModel.Password, salt)

	trx := db.ORM.Create(h.DbModel)
	if trx.Error != nil {
		return nil, trx.Error
	}
	return &h.DbModel.ID, nil
}

func (h *UserHandler) Login() (token string, err error) {
	var storedUser models.User
	err = db.ORM.Model(&models.User{}).Where("username = ?", *h.Username).First(&storedUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("invalid username")
		}
		return "", err
	}

	// Проверяем пароль: формат salt$hash
	parts := strings.Split(storedUser.Password, "$")
	if len(parts) != 2 {
		return "", errors.New("invalid password format")
	}
	storedSalt, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(*h.Password), storedSalt, 1, 64*1024, 4, 32)
	if hex.EncodeToString(hash) != parts[1] {
		return "", errors.New("invalid password")
	}

	// Удаляем старые токены (если они есть)
	_ = db.ORM.Where("user_id = ?", storedUser.ID).Delete(&models.UserTokens{}).Error

	tokenBytes := make([]byte, 32)
	if _, err = rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token = hex.EncodeToString(tokenBytes)

	err = db.ORM.Create(&models.UserTokens{
		UserID: storedUser.ID,
		Token:  token,
	}).Error
	if err != nil {
		return "", err
	}
	return token, nil
}

func (h *UserHandler) Logout() (err error) {
	if h.Token == nil || *h.Token == "" {
		return errors.New("token is empty")
	}
	return db.ORM.Where("token = ?", *h.Token).Delete(&models.UserTokens{}).Error
}

// GetUserIDByToken возвращает ID пользователя по его токену
func GetUserIDByToken(ctx context.Context, token string) (int64, error) {
	var userToken models.UserTokens
	err := db.GetReadOnlyDB(ctx).Where("token = ?", token).First(&userToken).Error
	if err != nil {
		return 0, err
	}
	return userToken.UserID, nil
}

// GetUserByID возвращает пользователя по ID
func GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername возвращает пользователя по имени
func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package db

import (
	"fmt"
	"os"
	"path/filepath"

	"yatube/config"
	"yatube/models"

	"gorm.io/gorm"
)

// Migrate применяет автомиграцию всех моделей приложения
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.User{},
		&models.UserTokens{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// EnsureMediaDir создает каталог для загружаемых картинок (media/posts)
func EnsureMediaDir() error {
	if config.AppConfig == nil {
		return fmt.Errorf("AppConfig is not loaded")
	}
	dir := filepath.Join(config.AppConfig.Media.Root, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create media dir %s: %w", dir, err)
	}
	return nil
}

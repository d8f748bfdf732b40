package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"yatube/config"

	"github.com/gin-gonic/gin"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// MediaRoot возвращает корневой каталог медиафайлов
func MediaRoot() string {
	if config.AppConfig != nil && config.AppConfig.Media.Root != "" {
		return config.AppConfig.Media.Root
	}
	return "media"
}

// SavePostImage сохраняет загруженную картинку под префиксом posts/
// и возвращает относительный путь для записи в пост
func SavePostImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}

	name := fmt.Sprintf("posts/%d%s", time.Now().UnixNano(), ext)
	dst := filepath.Join(MediaRoot(), filepath.FromSlash(name))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return name, nil
}

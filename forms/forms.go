package forms

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PostForm - форма создания и редактирования поста.
// Пользователь управляет только текстом, группой и картинкой:
// автор и дата публикации назначаются сервером.
type PostForm struct {
	Text    string            `json:"text"`
	GroupID *int64            `json:"group"`
	Image   string            `json:"image,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Bind читает поля формы из запроса. Ошибки разбора
// откладываются до Validate, введенные значения сохраняются.
func (f *PostForm) Bind(c *gin.Context) {
	f.Errors = make(map[string]string)
	f.Text = c.PostForm("text")

	if raw := strings.TrimSpace(c.PostForm("group")); raw != "" {
		groupID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			f.Errors["group"] = "Выберите корректную группу"
			return
		}
		f.GroupID = &groupID
	}
}

// Validate проверяет форму и заполняет Errors по полям
func (f *PostForm) Validate(ctx context.Context) bool {
	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Обязательное поле"
	}
	if f.GroupID != nil {
		var group models.Group
		err := db.GetReadOnlyDB(ctx).First(&group, *f.GroupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			f.Errors["group"] = "Выберите корректную группу"
		} else if err != nil {
			f.Errors["group"] = "Не удалось проверить группу"
		}
	}
	return len(f.Errors) == 0
}

// CommentForm - форма комментария, единственное поле - текст
type CommentForm struct {
	Text   string            `json:"text"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (f *CommentForm) Bind(c *gin.Context) {
	f.Errors = make(map[string]string)
	f.Text = c.PostForm("text")
}

func (f *CommentForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Обязательное поле"
	}
	return len(f.Errors) == 0
}

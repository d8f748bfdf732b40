package services

import (
	"context"
	"fmt"
	"time"

	"yatube/db"
	"yatube/models"
)

type CommentService struct{}

func NewCommentService() *CommentService {
	return &CommentService{}
}

// AddComment создает комментарий к посту от имени пользователя
func (cs *CommentService) AddComment(ctx context.Context, authorID int64, postID int64, text string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   &postID,
		AuthorID: authorID,
		Text:     text,
		Created:  time.Now(),
	}
	if err := db.GetWriteDB(ctx).Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// GetPostComments возвращает комментарии поста, новые сверху
func (cs *CommentService) GetPostComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := db.GetReadOnlyDB(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

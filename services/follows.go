package services

import (
	"context"
	"fmt"
	"time"

	"yatube/db"
	"yatube/models"
)

type FollowService struct{}

func NewFollowService() *FollowService {
	return &FollowService{}
}

// Follow подписывает пользователя на автора.
// Повторная подписка не создает дубликат, подписка на себя запрещена.
func (fs *FollowService) Follow(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return fmt.Errorf("cannot follow yourself")
	}

	var existing models.Follow
	err := db.GetReadOnlyDB(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&existing).Error
	if err == nil {
		// Подписка уже есть - операция идемпотентна
		return nil
	}

	follow := &models.Follow{
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := db.GetWriteDB(ctx).Create(follow).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// Unfollow отписывает пользователя от автора.
// Отсутствие подписки ошибкой не считается.
func (fs *FollowService) Unfollow(ctx context.Context, userID, authorID int64) error {
	err := db.GetWriteDB(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

// IsFollowing проверяет наличие подписки
func (fs *FollowService) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

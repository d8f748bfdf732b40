package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"yatube/db"
	"yatube/models"
)

const (
	// PAGE_SIZE - фиксированный размер страницы списков постов
	PAGE_SIZE = 10
)

// PostFilter - параметры выборки постов. Пустой фильтр - все посты.
type PostFilter struct {
	GroupID    *int64
	AuthorID   *int64
	FollowerID *int64 // посты авторов, на которых подписан этот пользователь
}

type PostService struct{}

func NewPostService() *PostService {
	return &PostService{}
}

// ListPosts возвращает страницу постов по фильтру,
// отсортированных по дате публикации (новые сверху)
func (ps *PostService) ListPosts(ctx context.Context, filter PostFilter, page int) (*models.Page, error) {
	if page < 1 {
		page = 1
	}

	query := db.GetReadOnlyDB(ctx).Model(&models.Post{})
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.FollowerID != nil {
		query = query.Where(
			"author_id IN (?)",
			db.GetReadOnlyDB(ctx).Model(&models.Follow{}).
				Select("author_id").
				Where("user_id = ?", *filter.FollowerID),
		)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	totalPages := int((count + PAGE_SIZE - 1) / PAGE_SIZE)

	// Страница за пределами диапазона - пустой результат, не ошибка
	posts := make([]models.Post, 0, PAGE_SIZE)
	err := query.
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC, id DESC").
		Limit(PAGE_SIZE).
		Offset((page - 1) * PAGE_SIZE).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return &models.Page{
		Posts:       posts,
		Number:      page,
		TotalPages:  totalPages,
		Count:       count,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// GetPost возвращает пост по ID вместе с автором и группой
func (ps *PostService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	err := db.GetReadOnlyDB(ctx).
		Preload("Author").
		Preload("Group").
		First(&post, postID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost создает новый пост и уведомляет подписчиков автора
func (ps *PostService) CreatePost(ctx context.Context, authorID int64, text string, groupID *int64, image string) (*models.Post, error) {
	post := &models.Post{
		Text:     text,
		PubDate:  time.Now(),
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    image,
	}

	if err := db.GetWriteDB(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	go ps.notifyFollowers(context.Background(), post)

	return post, nil
}

// UpdatePost меняет текст, группу и картинку поста.
// Дата публикации и автор не трогаются.
func (ps *PostService) UpdatePost(ctx context.Context, postID int64, text string, groupID *int64, image string) error {
	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}
	if image != "" {
		updates["image"] = image
	}
	err := db.GetWriteDB(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// DeletePost удаляет пост, если он принадлежит пользователю
func (ps *PostService) DeletePost(ctx context.Context, userID int64, postID int64) error {
	var post models.Post
	err := db.GetWriteDB(ctx).Where("id = ? AND author_id = ?", postID, userID).First(&post).Error
	if err != nil {
		return fmt.Errorf("post not found or access denied: %w", err)
	}
	if err := db.GetWriteDB(ctx).Delete(&post).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// GetGroupBySlug возвращает группу по слагу
func (ps *PostService) GetGroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	var group models.Group
	err := db.GetReadOnlyDB(ctx).Where("slug = ?", slug).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// notifyFollowers рассылает событие о новом посте подписчикам автора.
// Основной путь - RabbitMQ, fallback - прямая отправка в WebSocket.
func (ps *PostService) notifyFollowers(ctx context.Context, post *models.Post) {
	var followerIDs []int64
	err := db.GetReadOnlyDB(ctx).
		Model(&models.Follow{}).
		Where("author_id = ?", post.AuthorID).
		Pluck("user_id", &followerIDs).Error
	if err != nil {
		log.Printf("ERROR: failed to get followers for author %d: %v", post.AuthorID, err)
		return
	}

	for _, followerID := range followerIDs {
		event := PostEvent{
			UserID:   followerID,
			PostID:   post.ID,
			AuthorID: post.AuthorID,
			Text:     post.Text,
			PubDate:  post.PubDate,
		}
		if err := PublishPostEvent(ctx, event); err != nil {
			// RabbitMQ недоступен - шлем напрямую через WebSocket
			sendDirectPostEvent(event)
		}
	}
}

package services

import (
	"context"
	"testing"

	"yatube/db"
	"yatube/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	fs := NewFollowService()

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "following")

	require.NoError(t, fs.Follow(ctx, follower.ID, author.ID))
	// Повторная подписка не создает дубликат
	require.NoError(t, fs.Follow(ctx, follower.ID, author.ID))

	var count int64
	require.NoError(t, db.ORM.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", follower.ID, author.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowSelf(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	fs := NewFollowService()

	user := createTestUser(t, "loner")

	err := fs.Follow(ctx, user.ID, user.ID)
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.ORM.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUnfollow(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	fs := NewFollowService()

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "following")

	require.NoError(t, fs.Follow(ctx, follower.ID, author.ID))

	following, err := fs.IsFollowing(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, fs.Unfollow(ctx, follower.ID, author.ID))

	following, err = fs.IsFollowing(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// Отписка без подписки - не ошибка
	require.NoError(t, fs.Unfollow(ctx, follower.ID, author.ID))
}

func TestFollowFeedFilter(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	fs := NewFollowService()
	ps := NewPostService()

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "following")
	outsider := createTestUser(t, "outsider")

	post, err := ps.CreatePost(ctx, author.ID, "Пост для подписчиков", nil, "")
	require.NoError(t, err)
	_, err = ps.CreatePost(ctx, outsider.ID, "Пост не для ленты", nil, "")
	require.NoError(t, err)

	// До подписки лента пуста
	page, err := ps.ListPosts(ctx, PostFilter{FollowerID: &follower.ID}, 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 0)

	require.NoError(t, fs.Follow(ctx, follower.ID, author.ID))

	page, err = ps.ListPosts(ctx, PostFilter{FollowerID: &follower.ID}, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, post.ID, page.Posts[0].ID)

	// После отписки лента снова пуста
	require.NoError(t, fs.Unfollow(ctx, follower.ID, author.ID))
	page, err = ps.ListPosts(ctx, PostFilter{FollowerID: &follower.ID}, 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 0)
}

func TestAddComment(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	cs := NewCommentService()
	ps := NewPostService()

	author := createTestUser(t, "author")
	commenter := createTestUser(t, "commenter")

	post, err := ps.CreatePost(ctx, author.ID, "Текст поста", nil, "")
	require.NoError(t, err)

	comment, err := cs.AddComment(ctx, commenter.ID, post.ID, "Тестовый коммент")
	require.NoError(t, err)
	assert.Equal(t, "Тестовый коммент", comment.Text)
	assert.False(t, comment.Created.IsZero())

	comments, err := cs.GetPostComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, commenter.ID, comments[0].AuthorID)
}

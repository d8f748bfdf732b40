package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"yatube/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FollowIndex - лента постов авторов, на которых подписан пользователь
func FollowIndex(c *gin.Context) {
	userID := c.GetInt64("user_id")

	page, err := postService.ListPosts(
		c.Request.Context(),
		services.PostFilter{FollowerID: &userID},
		parsePage(c),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page_obj": page})
}

// ProfileFollow подписывает текущего пользователя на автора.
// Повторная подписка и подписка на себя ничего не создают.
func ProfileFollow(c *gin.Context) {
	userID := c.GetInt64("user_id")

	author, err := services.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	profileURL := fmt.Sprintf("/profile/%s", author.Username)

	if userID == author.ID {
		// Подписка на себя запрещена, но это не ошибка страницы
		c.Redirect(http.StatusFound, profileURL)
		return
	}

	if err := followService.Follow(c.Request.Context(), userID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow"})
		return
	}

	c.Redirect(http.StatusFound, profileURL)
}

// ProfileUnfollow отписывает текущего пользователя от автора.
// Отсутствие подписки ошибкой не считается.
func ProfileUnfollow(c *gin.Context) {
	userID := c.GetInt64("user_id")

	author, err := services.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	if err := followService.Unfollow(c.Request.Context(), userID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s", author.Username))
}

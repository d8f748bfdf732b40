package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"yatube/api/middleware"
	"yatube/forms"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddComment добавляет комментарий к посту.
// Невалидная форма не сохраняется: просто редирект обратно на пост.
func AddComment(c *gin.Context) {
	userID := c.GetInt64("user_id")

	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post"})
		return
	}

	detailURL := fmt.Sprintf("/posts/%d", post.ID)

	var form forms.CommentForm
	form.Bind(c)
	if !form.Validate() {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	if _, err := commentService.AddComment(c.Request.Context(), userID, post.ID, form.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	middleware.RecordCommentCreated()

	c.Redirect(http.StatusFound, detailURL)
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"yatube/api/middleware"
	"yatube/forms"
	"yatube/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	postService    = services.NewPostService()
	commentService = services.NewCommentService()
	followService  = services.NewFollowService()
)

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Index - главная страница со всеми постами
func Index(c *gin.Context) {
	page, err := postService.ListPosts(c.Request.Context(), services.PostFilter{}, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page_obj": page})
}

// GroupList - посты выбранной группы
func GroupList(c *gin.Context) {
	slug := c.Param("slug")
	group, err := postService.GetGroupBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get group"})
		return
	}

	page, err := postService.ListPosts(c.Request.Context(), services.PostFilter{GroupID: &group.ID}, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group, "page_obj": page})
}

// Profile - страница автора с его постами
func Profile(c *gin.Context) {
	username := c.Param("username")
	author, err := services.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	page, err := postService.ListPosts(c.Request.Context(), services.PostFilter{AuthorID: &author.ID}, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"author": author, "page_obj": page})
}

// PostDetail - страница поста с комментариями и формой комментария
func PostDetail(c *gin.Context) {
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

	comments, err := commentService.GetPostComments(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"form":     forms.CommentForm{},
	})
}

// PostCreate создает новый пост от имени текущего пользователя.
// Невалидная форма возвращается с ошибками и кодом 200.
func PostCreate(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var form forms.PostForm
	form.Bind(c)

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := services.SavePostImage(c, file)
		if err != nil {
			form.Errors["image"] = "Загрузите корректную картинку"
		} else {
			form.Image = imagePath
		}
	}

	if !form.Validate(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"form": form})
		return
	}

	_, err := postService.CreatePost(c.Request.Context(), userID, form.Text, form.GroupID, form.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	middleware.RecordPostCreated()

	user, err := services.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s", user.Username))
}

// PostEdit меняет пост. Редактировать может только автор,
// остальные молча отправляются на страницу поста.
func PostEdit(c *gin.Context) {
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

	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	var form forms.PostForm
	form.Bind(c)

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := services.SavePostImage(c, file)
		if err != nil {
			form.Errors["image"] = "Загрузите корректную картинку"
		} else {
			form.Image = imagePath
		}
	}

	if !form.Validate(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"form": form})
		return
	}

	if err := postService.UpdatePost(c.Request.Context(), post.ID, form.Text, form.GroupID, form.Image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// ClearPageCache сбрасывает кеш страниц (служебный эндпоинт)
func ClearPageCache(c *gin.Context) {
	if err := services.GlobalPageCache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared successfully"})
}

package middleware

import (
	"net/http"
	"strings"

	"yatube/services"

	"github.com/gin-gonic/gin"
)

// LoginURL - куда отправляем неавторизованных пользователей
const LoginURL = "/auth/login"

// LoginRequired - middleware для изменяющих ручек.
// Токен ищется в Authorization: Bearer <token>, без валидного
// токена запрос уходит редиректом на страницу логина.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := services.GetUserIDByToken(c.Request.Context(), token)
			if err == nil {
				c.Set("user_id", userID)
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, LoginURL)
		c.Abort()
	}
}

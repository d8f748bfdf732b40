package routes

import (
	"yatube/api/handlers"
	"yatube/api/middleware"
	"yatube/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicApi(router *gin.Engine) {
	// Главная страница кешируется целиком на время окна кеша
	router.GET("/", middleware.CachePage(), handlers.Index)
	router.GET("/group/:slug", handlers.GroupList)
	router.GET("/profile/:username", handlers.Profile)
	router.GET("/posts/:post_id", handlers.PostDetail)

	// Изменяющие ручки требуют авторизации
	authRequired := router.Group("/", middleware.LoginRequired())
	{
		authRequired.POST("create", handlers.PostCreate)
		authRequired.POST("posts/:post_id/edit", handlers.PostEdit)
		authRequired.POST("posts/:post_id/comment", handlers.AddComment)
		authRequired.GET("follow", handlers.FollowIndex)
		authRequired.POST("profile/:username/follow", handlers.ProfileFollow)
		authRequired.POST("profile/:username/unfollow", handlers.ProfileUnfollow)
		authRequired.GET("ws/notify", handlers.WSNotifyHandler)
	}

	router.POST("/auth/register", handlers.Register)
	router.POST("/auth/login", handlers.Login)
	router.POST("/auth/logout", handlers.Logout)
	router.GET("/auth/login", handlers.LoginPage)

	router.POST("/internal/cache/clear", handlers.ClearPageCache)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Static("/media", services.MediaRoot())
}

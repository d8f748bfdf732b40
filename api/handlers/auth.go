package handlers

import (
	"net/http"

	"yatube/models"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Firstname string `json:"first_name"`
	Lastname  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	Token string `json:"token" binding:"required"`
}

func Register(c *gin.Context) {
	var registerRequest RegisterRequest
	if err := c.ShouldBindJSON(&registerRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	newUser := models.User{
		Username:  registerRequest.Username,
		FirstName: registerRequest.Firstname,
		LastName:  registerRequest.Lastname,
		Password:  registerRequest.Password,
	}

	userHandler := services.UserHandler{
		Username: &registerRequest.Username,
		Password: &registerRequest.Password,
		DbModel:  &newUser,
	}

	userId, err := userHandler.Register()
	if err != nil {
		if err.Error() == "user already exists" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": userId, "username": newUser.Username})
}

func Login(c *gin.Context) {
	var loginRequest LoginRequest
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userHandler := services.UserHandler{
		Username: &loginRequest.Username,
		Password: &loginRequest.Password,
	}

	token, err := userHandler.Login()
	if err != nil {
		if err.Error() == "invalid username" || err.Error() == "invalid password" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    token,
		"username": loginRequest.Username,
	})
}

func Logout(c *gin.Context) {
	var logoutRequest LogoutRequest
	if err := c.ShouldBindJSON(&logoutRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userHandler := services.UserHandler{
		Token: &logoutRequest.Token,
	}
	if err := userHandler.Logout(); err != nil {
		if err.Error() == "token is empty" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// LoginPage - цель редиректа для неавторизованных запросов
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Authentication required", "login_url": c.Request.URL.Path})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todos-be/internal/models"
	"todos-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthController(authService service.AuthService, userService service.UserService) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
	}
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorBody("Invalid request body"))
		return
	}
	respond(c, ac.authService.Login(&req))
}

// CreateUser handles POST /api/auth/create-user.
func (ac *AuthController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorBody("Invalid request body"))
		return
	}
	respond(c, ac.userService.Create(&req))
}

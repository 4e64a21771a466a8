package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todos-be/internal/middleware"
	"todos-be/internal/models"
	"todos-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAll handles GET /api/users.
func (uc *UserController) GetAll(c *gin.Context) {
	respond(c, uc.userService.GetAll())
}

// GetOne handles GET /api/users/:id.
func (uc *UserController) GetOne(c *gin.Context) {
	respond(c, uc.userService.GetByID(c.Param("id")))
}

// Remove handles DELETE /api/users and deletes the acting user.
func (uc *UserController) Remove(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorBody("UserId is required"))
		return
	}
	respond(c, uc.userService.Remove(userID.(string)))
}

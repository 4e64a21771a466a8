package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todos-be/internal/middleware"
	"todos-be/internal/models"
	"todos-be/internal/service"
)

type TodoController struct {
	todoService service.TodoService
}

func NewTodoController(todoService service.TodoService) *TodoController {
	return &TodoController{todoService: todoService}
}

// actingUser pulls the id the user extractor attached to the context.
func actingUser(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorBody("UserId is required"))
		return "", false
	}
	return userID.(string), true
}

// GetAll handles GET /api/todos.
func (tc *TodoController) GetAll(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	respond(c, tc.todoService.GetAll(userID))
}

// GetOne handles GET /api/todos/:id.
func (tc *TodoController) GetOne(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	respond(c, tc.todoService.GetOne(c.Param("id"), userID))
}

// Create handles POST /api/todos.
func (tc *TodoController) Create(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorBody("Invalid request body"))
		return
	}
	respond(c, tc.todoService.Create(&req, userID))
}

// Update handles PUT /api/todos/:id.
func (tc *TodoController) Update(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorBody("Invalid request body"))
		return
	}
	respond(c, tc.todoService.Update(c.Param("id"), userID, &req))
}

// Remove handles DELETE /api/todos/:id.
func (tc *TodoController) Remove(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	respond(c, tc.todoService.Remove(c.Param("id"), userID))
}

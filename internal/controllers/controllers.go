// Package controllers maps HTTP requests onto service calls. Controllers bind
// the body, delegate, and forward the service result verbatim; they never
// inspect the result content.
package controllers

import (
	"github.com/gin-gonic/gin"

	"todos-be/internal/models"
)

func respond(c *gin.Context, r *models.Result) {
	if r.Content == nil {
		c.Status(r.StatusCode)
		return
	}
	c.JSON(r.StatusCode, r.Content)
}

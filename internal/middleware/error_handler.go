package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"

	"todos-be/internal/jwt"
	"todos-be/internal/models"
)

// ErrorHandler is the centralized mapping from middleware errors to HTTP
// responses. It must be registered before any middleware that calls
// c.Error().
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		switch {
		case errors.Is(err, ErrMissingToken):
			c.JSON(http.StatusUnauthorized, models.ErrorBody("token missing"))
		case errors.Is(err, gojwt.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, models.ErrorBody("token expired"))
		case isTokenError(err):
			c.JSON(http.StatusUnauthorized, models.ErrorBody("invalid token"))
		case errors.Is(err, jwt.ErrMissingSecret):
			c.JSON(http.StatusInternalServerError, models.ErrorBody("Failed to sign JWT"))
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorBody("Internal Server Error"))
		}
	}
}

func isTokenError(err error) bool {
	return errors.Is(err, gojwt.ErrTokenMalformed) ||
		errors.Is(err, gojwt.ErrTokenSignatureInvalid) ||
		errors.Is(err, gojwt.ErrTokenUnverifiable) ||
		errors.Is(err, gojwt.ErrTokenNotValidYet) ||
		errors.Is(err, gojwt.ErrTokenInvalidClaims)
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"todos-be/internal/jwt"
	"todos-be/internal/models"
	"todos-be/internal/repository"
)

// Context keys shared between the middleware chain and the controllers.
const (
	ContextTokenKey  = "token"
	ContextUserKey   = "user"
	ContextUserIDKey = "userId"
)

// ErrMissingToken signals a protected route hit without a bearer token.
var ErrMissingToken = errors.New("token missing")

// TokenExtractor reads the Authorization header and, when it carries a bearer
// token, stores the token on the request context. Requests without one pass
// through unchanged.
func TokenExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			c.Set(ContextTokenKey, parts[1])
		}
		c.Next()
	}
}

// Auth is the hard gate for protected routes: it requires a previously
// extracted token and verifies its signature, expiry and subject id. Failures
// are handed to the centralized error handler.
func Auth(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString(ContextTokenKey)
		if token == "" {
			c.Error(ErrMissingToken)
			c.Abort()
			return
		}
		if _, err := jwtService.ValidateToken(token); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserExtractor loads the acting user for requests that carry a token and
// attaches it, hash stripped, to the request context. Requests without a
// token pass through with no user attached; an invalid token goes to the
// error handler.
func UserExtractor(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString(ContextTokenKey)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.ID)
		if err == nil {
			c.Set(ContextUserKey, models.NewUserResponse(user))
			c.Set(ContextUserIDKey, user.ID)
		}
		c.Next()
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"todos-be/internal/entities"
	"todos-be/internal/jwt"
	"todos-be/internal/models"
	"todos-be/internal/repository/mocks"
)

func newTestRouter(jwtService *jwt.JWTService, userRepo *mocks.MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(), TokenExtractor())

	router.GET("/public", func(c *gin.Context) {
		c.String(http.StatusOK, "token=%s", c.GetString(ContextTokenKey))
	})

	protected := router.Group("/protected")
	protected.Use(Auth(jwtService), UserExtractor(jwtService, userRepo))
	protected.GET("", func(c *gin.Context) {
		userID, exists := c.Get(ContextUserIDKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorBody("UserId is required"))
			return
		}
		c.String(http.StatusOK, "user=%s", userID)
	})

	return router
}

func perform(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenExtractorPassesThroughWithoutHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(jwt.NewJWTService("test-secret", time.Hour), mocks.NewMockUserRepository(ctrl))

	w := perform(router, "/public", "")
	if w.Code != http.StatusOK || w.Body.String() != "token=" {
		t.Fatalf("expected pass-through without token, got %d %q", w.Code, w.Body.String())
	}
}

func TestTokenExtractorStoresBearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(jwt.NewJWTService("test-secret", time.Hour), mocks.NewMockUserRepository(ctrl))

	w := perform(router, "/public", "Bearer abc123")
	if w.Code != http.StatusOK || w.Body.String() != "token=abc123" {
		t.Fatalf("expected extracted token, got %d %q", w.Code, w.Body.String())
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(jwt.NewJWTService("test-secret", time.Hour), mocks.NewMockUserRepository(ctrl))

	w := perform(router, "/protected", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "token missing") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(jwt.NewJWTService("test-secret", time.Hour), mocks.NewMockUserRepository(ctrl))

	w := perform(router, "/protected", "Bearer not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid token") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	expired := jwt.NewJWTService("test-secret", -time.Minute)
	token, err := expired.GenerateToken("u1", "a@b.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newTestRouter(jwt.NewJWTService("test-secret", time.Hour), mocks.NewMockUserRepository(ctrl))

	w := perform(router, "/protected", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "token expired") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUserExtractorAttachesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	userRepo.EXPECT().FindByID("u1").
		Return(&entities.User{ID: "u1", Email: "a@b.com", PasswordHash: "hash"}, nil)

	token, err := jwtService.GenerateToken("u1", "a@b.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newTestRouter(jwtService, userRepo)

	w := perform(router, "/protected", "Bearer "+token)
	if w.Code != http.StatusOK || w.Body.String() != "user=u1" {
		t.Fatalf("expected attached user, got %d %q", w.Code, w.Body.String())
	}
}

func TestUserExtractorSkipsUnknownSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	// Valid token for a user that has since been deleted.
	userRepo.EXPECT().FindByID("ghost").
		Return(nil, fmt.Errorf("failed to find user: %w", gorm.ErrRecordNotFound))

	token, err := jwtService.GenerateToken("ghost", "ghost@b.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newTestRouter(jwtService, userRepo)

	w := perform(router, "/protected", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from the handler, got %d %q", w.Code, w.Body.String())
	}
}

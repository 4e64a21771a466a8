package service

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todos-be/internal/jwt"
	"todos-be/internal/models"
	"todos-be/internal/repository"
	"todos-be/internal/validation"
)

// AuthService defines the authentication business logic.
type AuthService interface {
	Login(req *models.LoginRequest) *models.Result
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login checks the credentials and issues a signed, time-limited token. A
// missing user and a wrong password produce the same 401 so the response
// never reveals whether an email is registered.
func (s *authService) Login(req *models.LoginRequest) *models.Result {
	if issues := validation.Struct(req); issues != nil {
		return models.Invalid(issues)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	passwordCorrect := false
	if user != nil {
		passwordCorrect = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
	}
	if user == nil || !passwordCorrect {
		return &models.Result{
			StatusCode: http.StatusUnauthorized,
			Content:    models.ErrorBody("invalid email or password"),
		}
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return &models.Result{
			StatusCode: http.StatusInternalServerError,
			Content:    models.ErrorBody("Failed to sign JWT"),
		}
	}

	return models.Ok(&models.LoginResponse{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
	})
}

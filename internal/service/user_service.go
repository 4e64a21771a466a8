package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todos-be/internal/cache"
	"todos-be/internal/models"
	"todos-be/internal/repository"
	"todos-be/internal/validation"
)

const userCacheTTL = 15 * time.Minute

// UserKey builds the cache key for a user id.
func UserKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// UserService defines the user business logic.
type UserService interface {
	GetAll() *models.Result
	GetByID(id string) *models.Result
	Create(req *models.CreateUserRequest) *models.Result
	Remove(id string) *models.Result
}

type userService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	ctx      context.Context
}

// NewUserService creates a new user service. cacheClient may be nil; lookups
// then always hit the store.
func NewUserService(userRepo repository.UserRepository, cacheClient cache.Cache) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cacheClient,
		ctx:      context.Background(),
	}
}

// GetAll returns every user with the password hash stripped and the owned
// todo count attached.
func (s *userService) GetAll() *models.Result {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.NewUserResponse(&users[i]))
	}
	return models.Ok(responses)
}

// GetByID returns a single user with their todos. A miss is reported as a
// 200 with a "User not found" body, not a 404.
func (s *userService) GetByID(id string) *models.Result {
	if s.cache != nil {
		var cached models.UserDetailResponse
		if err := s.cache.GetJSON(s.ctx, UserKey(id), &cached); err == nil {
			return models.Ok(&cached)
		}
	}

	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ok("User not found")
	}
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	detail := models.NewUserDetailResponse(user)
	if s.cache != nil {
		s.cache.SetJSON(s.ctx, UserKey(id), detail, userCacheTTL)
	}
	return models.Ok(detail)
}

// Create registers a new user. The email existence check here is advisory;
// the unique index on users.email is what actually prevents a duplicate
// slipping in between check and insert.
func (s *userService) Create(req *models.CreateUserRequest) *models.Result {
	if issues := validation.Struct(req); issues != nil {
		return models.Invalid(issues)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return models.Fail(http.StatusBadRequest, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Fail(http.StatusBadRequest, "Unknown error")
	}

	user, err := s.userRepo.Create(req.Email, string(hash), req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Fail(http.StatusBadRequest, "User already exists")
		}
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	return models.Created(models.NewUserResponse(user))
}

// Remove deletes a user by id. A missing record is reported as a 200 with a
// "User not found" body.
func (s *userService) Remove(id string) *models.Result {
	if id == "" {
		return models.Fail(http.StatusUnauthorized, "UserId is required")
	}

	err := s.userRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ok("User not found")
	}
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	if s.cache != nil {
		s.cache.Delete(s.ctx, UserKey(id))
	}
	return models.NoContent()
}

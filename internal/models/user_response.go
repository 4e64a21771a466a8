package models

import (
	"time"

	"todos-be/internal/entities"
)

// UserResponse is a user with the password hash stripped and the owned todo
// count attached.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	TodoCount int       `json:"todo_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDetailResponse additionally embeds the user's todos.
type UserDetailResponse struct {
	UserResponse
	Todos []entities.Todo `json:"todos"`
}

// NewUserResponse strips the password hash from a user entity.
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		TodoCount: len(user.Todos),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserDetailResponse strips the password hash and keeps the todos.
func NewUserDetailResponse(user *entities.User) *UserDetailResponse {
	todos := user.Todos
	if todos == nil {
		todos = []entities.Todo{}
	}
	return &UserDetailResponse{
		UserResponse: *NewUserResponse(user),
		Todos:        todos,
	}
}

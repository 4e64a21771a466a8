package models

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     *string `json:"name,omitempty"`
	Password string  `json:"password" validate:"required,password"`
}

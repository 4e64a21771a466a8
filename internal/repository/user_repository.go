package repository

import (
	"fmt"

	"gorm.io/gorm"

	"todos-be/internal/entities"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

// UserRepository defines the user persistence operations.
type UserRepository interface {
	Create(email, passwordHash string, name *string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	FindAll() ([]entities.User, error)
	Delete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a gorm-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The unique index on email is the real guard
// against duplicate registrations; a violation surfaces as
// gorm.ErrDuplicatedKey.
func (r *userRepository) Create(email, passwordHash string, name *string) (*entities.User, error) {
	user := &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByID loads a user with their todos.
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Preload("Todos").First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindAll loads every user with their todos so callers can attach counts.
func (r *userRepository) FindAll() ([]entities.User, error) {
	var users []entities.User
	if err := r.db.Preload("Todos").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user by id. Owned todos go with it via the FK cascade.
func (r *userRepository) Delete(id string) error {
	tx := r.db.Delete(&entities.User{}, "id = ?", id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete user: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

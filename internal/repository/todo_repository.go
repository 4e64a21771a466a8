package repository

import (
	"fmt"

	"gorm.io/gorm"

	"todos-be/internal/entities"
)

//go:generate mockgen -source=todo_repository.go -destination=mocks/mock_todo_repository.go -package=mocks

// TodoRepository defines the todo persistence operations. Every read, update
// and delete is scoped by (id, user_id) so one user can never reach another
// user's todo; a mismatch behaves exactly like a missing record.
type TodoRepository interface {
	Create(note, userID string) (*entities.Todo, error)
	FindAllByUser(userID string) ([]entities.Todo, error)
	FindByIDAndUser(id, userID string) (*entities.Todo, error)
	Save(todo *entities.Todo) error
	Delete(id, userID string) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a gorm-backed todo repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(note, userID string) (*entities.Todo, error) {
	todo := &entities.Todo{
		Note:   note,
		UserID: userID,
	}
	if err := r.db.Create(todo).Error; err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

func (r *todoRepository) FindAllByUser(userID string) ([]entities.Todo, error) {
	var todos []entities.Todo
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) FindByIDAndUser(id, userID string) (*entities.Todo, error) {
	var todo entities.Todo
	if err := r.db.First(&todo, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return &todo, nil
}

func (r *todoRepository) Save(todo *entities.Todo) error {
	if err := r.db.Save(todo).Error; err != nil {
		return fmt.Errorf("failed to save todo: %w", err)
	}
	return nil
}

func (r *todoRepository) Delete(id, userID string) error {
	tx := r.db.Delete(&entities.Todo{}, "id = ? AND user_id = ?", id, userID)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete todo: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

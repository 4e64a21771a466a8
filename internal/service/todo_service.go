package service

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"todos-be/internal/cache"
	"todos-be/internal/entities"
	"todos-be/internal/models"
	"todos-be/internal/repository"
	"todos-be/internal/validation"
)

// TodoService defines the todo business logic. Every operation is scoped to
// the acting user; a todo owned by someone else is indistinguishable from a
// missing one.
type TodoService interface {
	GetAll(userID string) *models.Result
	GetOne(id, userID string) *models.Result
	Create(req *models.CreateTodoRequest, userID string) *models.Result
	Update(id, userID string, req *models.UpdateTodoRequest) *models.Result
	Remove(id, userID string) *models.Result
}

type todoService struct {
	todoRepo repository.TodoRepository
	cache    cache.Cache
	ctx      context.Context
}

// NewTodoService creates a new todo service. cacheClient may be nil.
func NewTodoService(todoRepo repository.TodoRepository, cacheClient cache.Cache) TodoService {
	return &todoService{
		todoRepo: todoRepo,
		cache:    cacheClient,
		ctx:      context.Background(),
	}
}

// invalidateOwner drops the owner's cached detail view, which embeds their
// todos, after any todo mutation.
func (s *todoService) invalidateOwner(userID string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, UserKey(userID))
	}
}

func (s *todoService) GetAll(userID string) *models.Result {
	todos, err := s.todoRepo.FindAllByUser(userID)
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}
	if todos == nil {
		todos = []entities.Todo{}
	}
	return models.Ok(todos)
}

// GetOne returns a single todo scoped to its owner. A miss is reported as a
// 200 with a "Todo not found" body.
func (s *todoService) GetOne(id, userID string) *models.Result {
	todo, err := s.todoRepo.FindByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ok("Todo not found")
	}
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}
	return models.Ok(todo)
}

func (s *todoService) Create(req *models.CreateTodoRequest, userID string) *models.Result {
	issues := validation.Struct(req)
	issues = append(issues, validation.UUIDIssues(map[string]string{"userId": userID})...)
	if len(issues) > 0 {
		return models.Invalid(issues)
	}

	todo, err := s.todoRepo.Create(req.Note, userID)
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}
	s.invalidateOwner(userID)
	return models.Created(todo)
}

// Update applies a partial update; only provided fields are validated and
// written. An update that provides nothing leaves the todo unchanged.
func (s *todoService) Update(id, userID string, req *models.UpdateTodoRequest) *models.Result {
	if issues := validation.Struct(req); issues != nil {
		return models.Invalid(issues)
	}

	todo, err := s.todoRepo.FindByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Fail(http.StatusBadRequest, "Todo not found")
	}
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}

	if req.Note != nil {
		todo.Note = *req.Note
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}
	if err := s.todoRepo.Save(todo); err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}
	s.invalidateOwner(userID)
	return models.Ok(todo)
}

// Remove deletes a todo scoped to its owner. A missing record is reported as
// a 200 with a "Todo not found" body.
func (s *todoService) Remove(id, userID string) *models.Result {
	if issues := validation.UUIDIssues(map[string]string{"id": id, "userId": userID}); issues != nil {
		return models.Invalid(issues)
	}

	err := s.todoRepo.Delete(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ok("Todo not found")
	}
	if err != nil {
		return models.Fail(http.StatusBadRequest, err.Error())
	}
	s.invalidateOwner(userID)
	return models.NoContent()
}

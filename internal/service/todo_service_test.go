package service

import (
	"fmt"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"todos-be/internal/entities"
	"todos-be/internal/models"
	"todos-be/internal/repository/mocks"
)

const (
	ownerID    = "4f8f26f1-4db0-4a8e-9f0c-0d2a8a1b2c3d"
	strangerID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	todoID     = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

var errTodoNotFound = fmt.Errorf("failed to find todo: %w", gorm.ErrRecordNotFound)

func TestTodoGetAllReturnsEmptyListNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	todoRepo.EXPECT().FindAllByUser(ownerID).Return(nil, nil)

	svc := NewTodoService(todoRepo, nil)
	res := svc.GetAll(ownerID)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	todos, ok := res.Content.([]entities.Todo)
	if !ok || todos == nil {
		t.Fatalf("expected an empty todo slice, got %T (%v)", res.Content, res.Content)
	}
}

func TestTodoGetOneForAnotherUserLooksMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	// The scoped query cannot see a todo owned by someone else.
	todoRepo.EXPECT().FindByIDAndUser(todoID, strangerID).Return(nil, errTodoNotFound)

	svc := NewTodoService(todoRepo, nil)
	res := svc.GetOne(todoID, strangerID)

	if res.StatusCode != http.StatusOK || res.Content != "Todo not found" {
		t.Fatalf("expected soft 200 Todo not found, got %d (%v)", res.StatusCode, res.Content)
	}
}

func TestTodoCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	created := &entities.Todo{ID: todoID, Note: "buy milk", UserID: ownerID}
	todoRepo.EXPECT().Create("buy milk", ownerID).Return(created, nil)

	svc := NewTodoService(todoRepo, nil)
	res := svc.Create(&models.CreateTodoRequest{Note: "buy milk"}, ownerID)

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", res.StatusCode, res.Content)
	}
	todo := res.Content.(*entities.Todo)
	if todo.Done {
		t.Fatal("a new todo must not be done")
	}
}

func TestTodoCreateInvalidInputListsAllIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	svc := NewTodoService(todoRepo, nil)
	res := svc.Create(&models.CreateTodoRequest{Note: ""}, "not-a-uuid")

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	issues, ok := res.Content.([]models.FieldError)
	if !ok || len(issues) != 2 {
		t.Fatalf("expected note and userId issues, got %v", res.Content)
	}
}

func TestTodoUpdatePartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	stored := &entities.Todo{ID: todoID, Note: "buy milk", Done: false, UserID: ownerID}
	todoRepo.EXPECT().FindByIDAndUser(todoID, ownerID).Return(stored, nil)
	done := true
	todoRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(todo *entities.Todo) error {
		if todo.Note != "buy milk" || !todo.Done {
			t.Fatalf("unexpected saved todo: %+v", todo)
		}
		return nil
	})

	svc := NewTodoService(todoRepo, nil)
	res := svc.Update(todoID, ownerID, &models.UpdateTodoRequest{Done: &done})

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", res.StatusCode, res.Content)
	}
}

func TestTodoUpdateWithNoFieldsLeavesTodoUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	stored := &entities.Todo{ID: todoID, Note: "buy milk", Done: true, UserID: ownerID}
	todoRepo.EXPECT().FindByIDAndUser(todoID, ownerID).Return(stored, nil)
	todoRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(todo *entities.Todo) error {
		if todo.Note != "buy milk" || !todo.Done {
			t.Fatalf("no-op update changed the todo: %+v", todo)
		}
		return nil
	})

	svc := NewTodoService(todoRepo, nil)
	res := svc.Update(todoID, ownerID, &models.UpdateTodoRequest{})

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}

func TestTodoUpdateMissingIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	todoRepo.EXPECT().FindByIDAndUser(todoID, ownerID).Return(nil, errTodoNotFound)

	svc := NewTodoService(todoRepo, nil)
	note := "new note"
	res := svc.Update(todoID, ownerID, &models.UpdateTodoRequest{Note: &note})

	if res.StatusCode != http.StatusBadRequest || res.Content != "Todo not found" {
		t.Fatalf("expected 400 Todo not found, got %d (%v)", res.StatusCode, res.Content)
	}
}

func TestTodoRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	todoRepo.EXPECT().Delete(todoID, ownerID).Return(nil)
	todoRepo.EXPECT().Delete(todoID, strangerID).Return(gorm.ErrRecordNotFound)

	svc := NewTodoService(todoRepo, nil)

	if res := svc.Remove(todoID, ownerID); res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	// Deleting someone else's todo reports not found, never forbidden.
	if res := svc.Remove(todoID, strangerID); res.StatusCode != http.StatusOK || res.Content != "Todo not found" {
		t.Fatalf("expected soft 200 Todo not found, got %d (%v)", res.StatusCode, res.Content)
	}
}

func TestTodoRemoveValidatesIDFormats(t *testing.T) {
	ctrl := gomock.NewController(t)
	todoRepo := mocks.NewMockTodoRepository(ctrl)

	svc := NewTodoService(todoRepo, nil)
	res := svc.Remove("not-a-uuid", ownerID)

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if _, ok := res.Content.([]models.FieldError); !ok {
		t.Fatalf("expected a field issue list, got %T", res.Content)
	}
}

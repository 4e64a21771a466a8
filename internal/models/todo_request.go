package models

// CreateTodoRequest represents the request body for creating a todo.
type CreateTodoRequest struct {
	Note string `json:"note" validate:"required,min=1,max=255"`
}

// UpdateTodoRequest represents a partial todo update. Nil fields are left
// untouched; only provided fields are validated.
type UpdateTodoRequest struct {
	Note *string `json:"note,omitempty" validate:"omitempty,min=1,max=255"`
	Done *bool   `json:"done,omitempty"`
}

package entities

import "time"

// Todo represents a todo item owned by exactly one user.
type Todo struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Note      string    `json:"note" gorm:"size:255;not null"`
	Done      bool      `json:"done" gorm:"not null;default:false"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
